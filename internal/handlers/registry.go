package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	MatchingHandler     *MatchingHandler
	ContractHandler     *ContractHandler
	CommentHandler      *CommentHandler
	PaymentHandler      *PaymentHandler
	SubscriptionHandler *SubscriptionHandler
}
