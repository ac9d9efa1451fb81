package terminal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	logFieldTitle = "title"
	logFieldDoc   = "doc"
)

var (
	jsonDocumentFields       = []string{logFieldDoc}
	titledJSONDocumentFields = []string{logFieldTitle, logFieldDoc}
)

// jsonDocument is an indented JSON document, printed below its title when it has one
type jsonDocument struct {
	title string
	data  interface{}
}

func (j jsonDocument) Message() (string, error) {
	doc, err := indentJSON(j.data)
	if err != nil {
		return "", err
	}
	if j.title == "" {
		return doc, nil
	}

	title := color.New(color.Bold).SprintFunc()(j.title)
	return fmt.Sprintf("%s\n---\n%s", title, doc), nil
}

func (j jsonDocument) Payload() ([]string, map[string]interface{}, error) {
	if j.title == "" {
		return jsonDocumentFields, map[string]interface{}{
			logFieldDoc: j.data,
		}, nil
	}
	return titledJSONDocumentFields, map[string]interface{}{
		logFieldTitle: j.title,
		logFieldDoc:   j.data,
	}, nil
}

// indentJSON keeps the & of event and image urls readable instead of \u0026
func indentJSON(data interface{}) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
