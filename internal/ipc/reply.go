package ipc

import "encoding/json"

// Reply is what the daemon writes back after executing a Command: either
// a success (optionally carrying a payload, as Config Print's serialized
// config does) or an error message, mirroring the Ok/Err shape rwm's
// client expects.
type Reply struct {
	Err     string // empty means success
	Payload string // optional success payload
}

func OK() Reply                    { return Reply{} }
func OKWithPayload(p string) Reply { return Reply{Payload: p} }
func Err(msg string) Reply         { return Reply{Err: msg} }

func (r Reply) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return encodeTagged("Err", r.Err)
	}
	if r.Payload == "" {
		return encodeTagged("Ok", nil)
	}
	return encodeTagged("Ok", r.Payload)
}

func (r *Reply) UnmarshalJSON(data []byte) error {
	name, payload, err := decodeTagged(data)
	if err != nil {
		return err
	}
	if name == "Err" {
		var msg string
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &msg); err != nil {
				return err
			}
		}
		r.Err = msg
		return nil
	}
	r.Err = ""
	if len(payload) > 0 {
		return json.Unmarshal(payload, &r.Payload)
	}
	return nil
}
