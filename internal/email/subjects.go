package email

const (
	subjectTradeInSubmitted  = "Trade-In Submitted - PacMac Mobile"
	subjectLeaseApproved     = "Lease Application Approved - PacMac Mobile"
	subjectConnectivityOrder = "Nomad Internet Order Confirmed - PacMac Mobile"
	subjectOrderConfirmed    = "Order Confirmed - PacMac Mobile"
)
