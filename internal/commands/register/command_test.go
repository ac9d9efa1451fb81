package register

import (
	"context"
	"errors"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/fakeapi"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/mock"
)

func TestRegisterHandler(t *testing.T) {
	t.Run("should create the account without logging in", func(t *testing.T) {
		server := fakeapi.New(t)
		profile := mock.NewProfile(t)
		profile.SetBaseURL(server.URL)
		clients := mock.NewClients(t, profile)
		out, ui := mock.NewUI()

		cmd := &Command{inputs{
			Email:           "ayse@example.com",
			Name:            "Ayşe Yılmaz",
			Password:        "correct horse",
			ConfirmPassword: "correct horse",
		}}

		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, clients))

		assert.Contains(t, out.String(), "Successfully created an account for ayse@example.com")
		assert.Contains(t, out.String(), "biletbudur login --email ayse@example.com")
		assert.True(t, server.HasUser("ayse@example.com"), "should create the account")

		_, ok, _ := profile.Get(auth.KeyAccessToken)
		assert.False(t, ok, "should not store a session")
		assert.False(t, clients.Session.State().Snapshot().Authenticated(), "should not be authenticated")
	})

	t.Run("should split the full name into the first and last names", func(t *testing.T) {
		var req auth.RegisterRequest
		client := mock.BiletbudurClient{RegisterFn: func(r auth.RegisterRequest) error {
			req = r
			return nil
		}}
		profile := mock.NewProfile(t)
		_, ui := mock.NewUI()

		cmd := &Command{inputs{
			Email:           "ayse@example.com",
			Name:            " Ayşe Nur  Yılmaz ",
			Password:        "correct horse",
			ConfirmPassword: "correct horse",
		}}

		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, mock.NewClientsWith(t, profile, client)))
		assert.Equal(t, "Ayşe", req.FirstName)
		assert.Equal(t, "Nur Yılmaz", req.LastName)
	})

	t.Run("should not call the server when the passwords differ", func(t *testing.T) {
		var calls int
		client := mock.BiletbudurClient{RegisterFn: func(auth.RegisterRequest) error {
			calls++
			return nil
		}}
		profile := mock.NewProfile(t)
		_, ui := mock.NewUI()

		cmd := &Command{inputs{Email: "ayse@example.com", Password: "correct horse", ConfirmPassword: "battery staple"}}

		err := cmd.Handler(context.Background(), profile, ui, mock.NewClientsWith(t, profile, client))

		var validationErr auth.ValidationError
		assert.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)
		assert.Equal(t, 0, calls)
	})

	t.Run("should report the field error of a rejected registration", func(t *testing.T) {
		server := fakeapi.New(t)
		server.AddUser(fakeapi.User{Email: "ayse@example.com", Password: "correct horse"})
		profile := mock.NewProfile(t)
		profile.SetBaseURL(server.URL)
		_, ui := mock.NewUI()

		cmd := &Command{inputs{Email: "ayse@example.com", Password: "correct horse", ConfirmPassword: "correct horse"}}

		err := cmd.Handler(context.Background(), profile, ui, mock.NewClients(t, profile))

		var registrationErr auth.RegistrationError
		assert.True(t, errors.As(err, &registrationErr), "expected a registration error, got %v", err)
		assert.Equal(t, "Email: user with this email already exists.", registrationErr.Error())
	})
}
