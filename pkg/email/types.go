package email

type Message struct {
	To       []string
	Subject  string
	TextBody string
	Headers  map[string]string
}
