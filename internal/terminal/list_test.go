package terminal

import (
	"reflect"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"

	"github.com/google/go-cmp/cmp"
)

func TestList(t *testing.T) {
	assert.RegisterOpts(reflect.TypeOf(list{}), cmp.AllowUnexported(list{}))

	data := []interface{}{
		"Duman",
		"Sezen Aksu",
		7,
		nil,
	}

	t.Run("newList should stringify every item", func(t *testing.T) {
		assert.Equal(t, list{"Favorite performers", []string{"Duman", "Sezen Aksu", "7", ""}}, newList("Favorite performers", data))
	})

	t.Run("Message should indent the items below the message", func(t *testing.T) {
		message, err := newList("Favorite performers", data).Message()
		assert.Nil(t, err)
		assert.Equal(t, `Favorite performers
  Duman
  Sezen Aksu
  7
`, message)
	})

	t.Run("Message should print only the message for an empty list", func(t *testing.T) {
		message, err := newList("No performers", nil).Message()
		assert.Nil(t, err)
		assert.Equal(t, "No performers", message)
	})

	t.Run("Payload should hold the message and the items", func(t *testing.T) {
		keys, payload, err := newList("Favorite performers", data).Payload()
		assert.Nil(t, err)
		assert.Equal(t, []string{"message", "data"}, keys)
		assert.Equal(t, map[string]interface{}{
			"message": "Favorite performers",
			"data":    []string{"Duman", "Sezen Aksu", "7", ""},
		}, payload)
	})
}
