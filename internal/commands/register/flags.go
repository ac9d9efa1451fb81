package register

const (
	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "Specify the email address of the new account"

	flagFirstName      = "first-name"
	flagFirstNameUsage = "Specify your first name"

	flagLastName      = "last-name"
	flagLastNameUsage = "Specify your last name"

	flagName      = "name"
	flagNameUsage = "Specify your full name, used when the first and last names are omitted"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify the password of the new account"

	flagConfirmPassword      = "confirm-password"
	flagConfirmPasswordUsage = "Repeat the password of the new account"
)
