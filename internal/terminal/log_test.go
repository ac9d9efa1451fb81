package terminal

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestLogConstructor(t *testing.T) {
	assert.RegisterOpts(reflect.TypeOf(jsonDocument{}), cmp.AllowUnexported(jsonDocument{}))
	assert.RegisterOpts(reflect.TypeOf(list{}), cmp.AllowUnexported(list{}))

	for _, tc := range []struct {
		ctor          string
		log           Log
		expectedLevel LogLevel
		expectedData  LogData
	}{
		{
			ctor:          "NewTextLog",
			log:           NewTextLog("Logged in as %s", "ayse@example.com"),
			expectedLevel: LogLevelInfo,
			expectedData:  textMessage("Logged in as ayse@example.com"),
		},
		{
			ctor:          "NewDebugLog",
			log:           NewDebugLog("refreshing 100%"),
			expectedLevel: LogLevelDebug,
			expectedData:  textMessage("refreshing 100%"),
		},
		{
			ctor:          "NewWarningLog",
			log:           NewWarningLog("session expired"),
			expectedLevel: LogLevelWarn,
			expectedData:  textMessage("session expired"),
		},
		{
			ctor:          "NewListLog",
			log:           NewListLog("Favorite performers", "Duman"),
			expectedLevel: LogLevelInfo,
			expectedData:  list{"Favorite performers", []string{"Duman"}},
		},
		{
			ctor:          "NewFollowupLog",
			log:           NewFollowupLog(MsgSuggestedCommands, "biletbudur login"),
			expectedLevel: LogLevelDebug,
			expectedData:  list{MsgSuggestedCommands, []string{"biletbudur login"}},
		},
		{
			ctor:          "NewJSONLog",
			log:           NewJSONLog(map[string]interface{}{"a": "ayyy"}),
			expectedLevel: LogLevelInfo,
			expectedData:  jsonDocument{data: map[string]interface{}{"a": "ayyy"}},
		},
		{
			ctor:          "NewTitledJSONLog",
			log:           NewTitledJSONLog("Test Title", map[string]interface{}{"a": "ayyy"}),
			expectedLevel: LogLevelInfo,
			expectedData:  jsonDocument{"Test Title", map[string]interface{}{"a": "ayyy"}},
		},
		{
			ctor:          "NewErrorLog",
			log:           NewErrorLog(errors.New("oh noz")),
			expectedLevel: LogLevelError,
			expectedData:  errorMessage{errors.New("oh noz")},
		},
	} {
		t.Run(fmt.Sprintf("%s should create the expected Log", tc.ctor), func(t *testing.T) {
			time.Sleep(1 * time.Millisecond) // force tick
			assert.True(t, time.Now().After(tc.log.Time), "now should be later than the log's timestamp")
			assert.Equal(t, tc.expectedLevel, tc.log.Level)
			assert.Equal(t, tc.expectedData, tc.log.Data)
		})
	}
}

func TestLogMessage(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	for _, tc := range []struct {
		level           LogLevel
		data            LogData
		expectedOutputs map[OutputFormat]string
	}{
		{
			level: LogLevelInfo,
			data:  textMessage("this is a test log"),
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC INFO  this is a test log",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","message":"this is a test log"}`,
			},
		},
		{
			level: LogLevelInfo,
			data:  jsonDocument{data: map[string]interface{}{"a": true, "b": 1, "c": "sea"}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: `07:54:00 UTC INFO  {
  "a": true,
  "b": 1,
  "c": "sea"
}`,
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","doc":{"a":true,"b":1,"c":"sea"}}`,
			},
		},
		{
			level: LogLevelInfo,
			data:  jsonDocument{"Test Title", map[string]interface{}{"a": true, "b": 1, "c": "sea"}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: `07:54:00 UTC INFO  Test Title
---
{
  "a": true,
  "b": 1,
  "c": "sea"
}`,
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","title":"Test Title","doc":{"a":true,"b":1,"c":"sea"}}`,
			},
		},
		{
			level: LogLevelInfo,
			data:  jsonDocument{"Access token claims", map[string]interface{}{"url": "https://www.biletbudur.tr/e?id=1&ref=cli"}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: `07:54:00 UTC INFO  Access token claims
---
{
  "url": "https://www.biletbudur.tr/e?id=1&ref=cli"
}`,
			},
		},
		{
			level: LogLevelWarn,
			data:  textMessage("session expired"),
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC WARN  session expired",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"warn","message":"session expired"}`,
			},
		},
		{
			level: LogLevelInfo,
			data:  newList("Favorite performers", []interface{}{"Duman"}),
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC INFO  Favorite performers\n  Duman",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","message":"Favorite performers","data":["Duman"]}`,
			},
		},
		{
			level: LogLevelError,
			data:  errorMessage{errors.New("something bad happened")},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC ERROR something bad happened",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"error","err":"something bad happened"}`,
			},
		},
		{
			level: LogLevelError,
			data: errorMessage{fmt.Errorf("register failed: %w", testFieldError{
				"email":    {"Enter a valid email address."},
				"password": {"This password is too short.", "This password is too common."},
			})},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: `07:54:00 UTC ERROR register failed: email: Enter a valid email address.
  email: Enter a valid email address.
  password: This password is too short.
  password: This password is too common.`,
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"error","err":"register failed: email: Enter a valid email address.","fields":{"email":["Enter a valid email address."],"password":["This password is too short.","This password is too common."]}}`,
			},
		},
		{
			level: LogLevelError,
			data:  errorMessage{testFieldError{"email": {"user with this email already exists."}}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC ERROR email: user with this email already exists.",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"error","err":"email: user with this email already exists."}`,
			},
		},
	} {
		for outputFormat, expectedOutput := range tc.expectedOutputs {
			t.Run(fmt.Sprintf("With %s output format, %T should print the expected output", outputFormat, tc.data), func(t *testing.T) {
				log := Log{
					tc.level,
					time.Date(1989, 6, 22, 7, 54, 0, 0, time.UTC),
					tc.data,
				}

				output, err := log.Print(outputFormat)
				assert.Nil(t, err)
				assert.Equal(t, expectedOutput, output)
			})
		}
	}

	t.Run("Should return an error with an unknown output format", func(t *testing.T) {
		log := Log{
			LogLevelInfo,
			time.Date(1989, 6, 22, 7, 54, 0, 0, time.UTC),
			textMessage("this is a test log"),
		}

		_, err := log.Print(OutputFormat("yaml"))
		assert.Equal(t, errors.New("unsupported output format type: yaml"), err)
	})

	for _, tc := range []OutputFormat{OutputFormatText, OutputFormatJSON} {
		t.Run(fmt.Sprintf("Should propagate an error that occurs while producing %s output", tc), func(t *testing.T) {
			failLog := Log{LogLevelInfo, time.Now(), failMessage{}}
			_, err := failLog.Print(tc)
			assert.Equal(t, errFailMessage, err)
		})
	}
}

var errFailMessage = errors.New("something bad happened")

type failMessage struct{}

func (f failMessage) Message() (string, error) {
	return "", errFailMessage
}

func (f failMessage) Payload() ([]string, map[string]interface{}, error) {
	return nil, nil, errFailMessage
}

type testFieldError map[string][]string

func (e testFieldError) Error() string {
	msg := e["email"]
	if len(msg) == 0 {
		return "invalid input"
	}
	return "email: " + msg[0]
}

func (e testFieldError) FieldErrors() map[string][]string { return e }
