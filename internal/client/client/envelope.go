package client

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = errors.New("body is not valid JSON")

// Envelope is the {success,data,message,errors} wrapper some endpoints use.
type Envelope struct {
	Success     bool
	Data        json.RawMessage
	Message     string
	Errors      []string
	FieldErrors map[string][]string
}

// Decoded is the outcome of DecodeBody: either an envelope or a raw body.
type Decoded struct {
	IsEnvelope bool
	Envelope   Envelope
	Raw        json.RawMessage
}

// DecodeBody classifies a JSON body. A top-level object carrying both
// "success" and "data" keys is an envelope; anything else is raw.
func DecodeBody(body []byte) (Decoded, error) {
	if !gjson.ValidBytes(body) {
		return Decoded{}, ErrInvalidJSON
	}

	root := gjson.ParseBytes(body)
	success := root.Get("success")
	data := root.Get("data")
	if !root.IsObject() || !success.Exists() || !data.Exists() {
		return Decoded{Raw: json.RawMessage(body)}, nil
	}

	errs, fields := parseErrors(root.Get("errors"))
	env := Envelope{
		Success:     success.Bool(),
		Data:        json.RawMessage(data.Raw),
		Message:     stringField(root, "message"),
		Errors:      errs,
		FieldErrors: fields,
	}
	return Decoded{IsEnvelope: true, Envelope: env}, nil
}

// parseErrors flattens an "errors" value. Arrays give a plain list; objects
// give per-field lists, and the flattened list keeps document order.
func parseErrors(v gjson.Result) ([]string, map[string][]string) {
	var list []string
	switch {
	case v.IsArray():
		v.ForEach(func(_, e gjson.Result) bool {
			if e.Type != gjson.Null {
				list = append(list, e.String())
			}
			return true
		})
		return list, nil
	case v.IsObject():
		fields := make(map[string][]string)
		v.ForEach(func(k, e gjson.Result) bool {
			var msgs []string
			if e.IsArray() {
				e.ForEach(func(_, m gjson.Result) bool {
					if m.Type != gjson.Null {
						msgs = append(msgs, m.String())
					}
					return true
				})
			} else if e.Type != gjson.Null {
				msgs = append(msgs, e.String())
			}
			fields[k.String()] = msgs
			list = append(list, msgs...)
			return true
		})
		return list, fields
	}
	return nil, nil
}

func stringField(root gjson.Result, key string) string {
	v := root.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}

// errorMessage applies the message precedence for failure bodies: first
// error entry, then message, then MsgUnknown.
func errorMessage(errs []string, message string) string {
	if len(errs) > 0 && errs[0] != "" {
		return errs[0]
	}
	if message != "" {
		return message
	}
	return MsgUnknown
}

func errorKind(fields map[string][]string) Kind {
	if len(fields) > 0 {
		return KindValidation
	}
	return KindServer
}

// newStatusError builds the error for a non-2xx response. Bodies that are not
// JSON objects still yield an error carrying the HTTP status.
func newStatusError(status int, body []byte) *APIError {
	apiErr := &APIError{Message: MsgUnknown, StatusCode: status, Kind: KindServer}
	if !gjson.ValidBytes(body) {
		return apiErr
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return apiErr
	}
	errs, fields := parseErrors(root.Get("errors"))
	apiErr.Message = errorMessage(errs, stringField(root, "message"))
	apiErr.Errors = errs
	apiErr.FieldErrors = fields
	apiErr.Kind = errorKind(fields)
	return apiErr
}

func newEnvelopeError(status int, env Envelope) *APIError {
	msg := env.Message
	if msg == "" {
		msg = errorMessage(env.Errors, "")
	}
	return &APIError{
		Message:     msg,
		StatusCode:  status,
		Kind:        errorKind(env.FieldErrors),
		Errors:      env.Errors,
		FieldErrors: env.FieldErrors,
	}
}
