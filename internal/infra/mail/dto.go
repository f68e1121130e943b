package mail

type LeadAlertData struct {
	LeadID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	LeadType  string
	Timeline  string
	Budget    string
	Area      string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
