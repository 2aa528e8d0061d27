package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KilimcininKorOglu/asnber/internal/ber"
	"github.com/KilimcininKorOglu/asnber/internal/hexutil"
)

// tagRecord is the JSON form of a tag.
type tagRecord struct {
	Hex         string `json:"hex"`
	Class       string `json:"class"`
	Constructed bool   `json:"constructed"`
	Number      uint64 `json:"number"`
}

// valueRecord is the JSON form of a converted value.
type valueRecord struct {
	Type  string      `json:"type"`
	Hex   string      `json:"hex"`
	Value interface{} `json:"value"`
}

func (env *cmdEnv) hex(b []byte) string {
	s := hexutil.Encode(b)
	if env.cfg.Output.Lowercase {
		return strings.ToLower(s)
	}
	return s
}

func (env *cmdEnv) jsonOutput() bool {
	return env.cfg.Output.Format == "json"
}

func (env *cmdEnv) writeJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.stdout, string(data))
	return err
}

func (env *cmdEnv) printTag(t ber.Tag) error {
	data := ber.EncodeTag(t)
	if env.jsonOutput() {
		return env.writeJSON(tagRecord{
			Hex:         env.hex(data),
			Class:       t.Class().String(),
			Constructed: t.Constructed(),
			Number:      t.Number(),
		})
	}
	_, err := fmt.Fprintf(env.stdout, "%s\tclass=%s constructed=%t number=%d\n",
		env.hex(data), t.Class(), t.Constructed(), t.Number())
	return err
}

func (env *cmdEnv) printValue(typ string, raw []byte, v interface{}) error {
	if env.jsonOutput() {
		if b, ok := v.([]byte); ok {
			v = env.hex(b)
		}
		return env.writeJSON(valueRecord{Type: typ, Hex: env.hex(raw), Value: v})
	}
	_, err := fmt.Fprintf(env.stdout, "%s\t%s\n", env.hex(raw), formatValue(v))
	return err
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case []byte:
		return hexutil.Encode(x)
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprint(x)
	}
}
