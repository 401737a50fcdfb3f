package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
)

// formDecoder fills request DTOs from urlencoded bodies using their `form` tags.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("form")
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	d.RegisterConverter("", func(value string) reflect.Value {
		return reflect.ValueOf(strings.TrimSpace(value))
	})
	return d
}

// decodeForm parses the POST body into dst. Blank numeric fields stay zero.
func decodeForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, r.PostForm)
}

// formErrorMessage turns a decode failure into the flash text shown to the patient.
func formErrorMessage(err error) string {
	var multi schema.MultiError
	if errors.As(err, &multi) {
		for key, fieldErr := range multi {
			var conv schema.ConversionError
			if errors.As(fieldErr, &conv) {
				return key + " debe ser un número entero"
			}
		}
	}
	return msgInvalidForm
}
