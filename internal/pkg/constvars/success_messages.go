package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"
	RegisterSuccess = "user registered successfully"

	// User-related messages
	ProfileGetSuccess   = "get profile successfully"
	AvatarUploadSuccess = "avatar uploaded successfully"

	// Dashboard messages
	DashboardGetSuccess    = "get dashboard successfully"
	SectionGetSuccess      = "get dashboard section successfully"
	SectionNotAvailableYet = "this area is not yet available"
	NavigationGetSuccess   = "get navigation successfully"

	// Subscription messages
	SubscriptionStatusSuccess   = "get subscription status successfully"
	SubscriptionActivateSuccess = "subscription activated successfully"

	// Notification messages
	NotificationListSuccess = "get notifications successfully"
	NotificationReadSuccess = "notification marked as read"

	// Search messages
	SearchSuccess = "search completed successfully"
)
