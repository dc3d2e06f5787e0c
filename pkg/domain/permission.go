package domain

// Permission is the platform-owned tri-state gating notifications, with an
// extra terminal value for hosts without notification support at all
type Permission string

// permission states; Unsupported and Denied are terminal for the session
const (
	PermissionUnsupported Permission = "unsupported"
	PermissionDefault     Permission = "default"
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
)
