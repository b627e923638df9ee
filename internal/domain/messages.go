package domain

// Message IDs every catalog must translate.
const (
	MsgHelloName = "HelloName"
)

// RequiredMessages lists the IDs checked when catalogs are loaded.
var RequiredMessages = []string{MsgHelloName}
