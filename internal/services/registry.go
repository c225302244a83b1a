package services

// ServiceContainer wires every service for handler construction.
type ServiceContainer struct {
	AuthService         AuthService
	OtpService          OtpService
	ProfileService      ProfileService
	MatchingService     MatchingService
	ContractService     ContractService
	CommentService      CommentService
	SubscriptionService SubscriptionService
}
