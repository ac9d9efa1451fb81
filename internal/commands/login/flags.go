package login

const (
	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "Specify the email address of your biletbudur account"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify the password of your biletbudur account"
)
