package proto

// Reserved xids. Responses carrying NotificationXid are server pushes that
// do not answer any request.
const (
	NotificationXid int64 = -1
	HeartbeatXid    int64 = -2
)
