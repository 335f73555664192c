package errors

import "encoding/json"

// Error is the coded error shared by every stakegov package.
// Registered errors are sentinels; use `Clone` before attaching `Data`.
type Error struct {
	Code    uint                   `json:"code" msgpack:"code"`
	Message string                 `json:"message" msgpack:"message"`
	Data    map[string]interface{} `json:"data,omitempty" msgpack:"data,omitempty"`
}

func (o *Error) Serialize() (b []byte, err error) {
	b, err = json.Marshal(o)
	return
}

func (o *Error) Error() string {
	b, _ := o.Serialize()
	return string(b)
}

// Is reports whether target carries the same code, so clones match their
// sentinel with the standard `errors.Is`.
func (o *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || o == nil || t == nil {
		return false
	}

	return o.Code == t.Code
}

func (o *Error) SetData(k string, v interface{}) *Error {
	o.Data[k] = v

	return o
}

func (o *Error) Clone() *Error {
	var new Error
	new = *o

	new.Data = map[string]interface{}{}
	if len(o.Data) > 0 {
		for k, v := range o.Data {
			new.Data[k] = v
		}
	}

	return &new
}

func NewError(code uint, message string) *Error {
	return &Error{Code: code, Message: message, Data: map[string]interface{}{}}
}
