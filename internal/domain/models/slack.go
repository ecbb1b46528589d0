package models

// SlackMessage is the incoming-webhook payload. Text must always stand on its
// own: some destinations render only the text field and ignore blocks.
type SlackMessage struct {
	Text        string            `json:"text,omitempty"`
	Blocks      []SlackBlock      `json:"blocks,omitempty"`
	Attachments []SlackAttachment `json:"attachments,omitempty"`
}

const (
	BlockTypeSection = "section"
	BlockTypeHeader  = "header"
	BlockTypeDivider = "divider"
	BlockTypeContext = "context"
)

const (
	TextTypeMarkdown  = "mrkdwn"
	TextTypePlainText = "plain_text"
)

type SlackBlock struct {
	Type   string      `json:"type"`
	Text   *SlackText  `json:"text,omitempty"`
	Fields []SlackText `json:"fields,omitempty"`
}

type SlackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type SlackAttachment struct {
	Color     string                 `json:"color,omitempty"`
	Pretext   string                 `json:"pretext,omitempty"`
	Title     string                 `json:"title,omitempty"`
	TitleLink string                 `json:"title_link,omitempty"`
	Text      string                 `json:"text,omitempty"`
	Fields    []SlackAttachmentField `json:"fields,omitempty"`
}

type SlackAttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short,omitempty"`
}

// NewSectionMessage wraps text in a single mrkdwn section block.
func NewSectionMessage(text string) SlackMessage {
	return SlackMessage{
		Text: text,
		Blocks: []SlackBlock{
			{
				Type: BlockTypeSection,
				Text: &SlackText{
					Type: TextTypeMarkdown,
					Text: text,
				},
			},
		},
	}
}
