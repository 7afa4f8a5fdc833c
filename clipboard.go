package lawcopy

import "context"

// Clipboard receives copied article text.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier shows a short, transient message to the user.
type Notifier interface {
	Notify(message string)
}

// Messages shown after a copy attempt.
const (
	MsgCopied     = "已复制"
	MsgCopyFailed = "复制失败"
)
