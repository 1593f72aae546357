package assistant

// Notice is a transient message shown next to the chat, never added to it.
type Notice struct {
	Title       string
	Description string
	Error       bool
}

var (
	NoticeRecording        = Notice{Title: "מקליט", Description: "מקליט את הקול שלך..."}
	NoticeTranscribed      = Notice{Title: "הקלטה הצליחה", Description: "הטקסט התקבל מההקלטה"}
	NoticeSendFailed       = Notice{Title: "שגיאה", Description: "לא הצלחנו לשלוח את ההודעה. אנא נסה שוב.", Error: true}
	NoticeMicrophoneFailed = Notice{Title: "שגיאה", Description: "לא הצלחנו להתחיל הקלטה. אנא בדוק את הרשאות המיקרופון.", Error: true}
	NoticeTranscribeFailed = Notice{Title: "שגיאה", Description: "לא הצלחנו לתמלל את ההקלטה. אנא נסה שוב.", Error: true}
)

func (n Notice) String() string {
	return n.Title + ": " + n.Description
}
