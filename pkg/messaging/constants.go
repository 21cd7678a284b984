package messaging

const (
	ExchangeName = "newsletter.events"

	NewLeadEventName  = "lead.created"
	NewLeadRoutingKey = NewLeadEventName
)
