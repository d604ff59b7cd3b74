package rpc

import (
	"testing"
)

type ping struct {
	LeagueID string `json:"leagueId"`
	Season   int    `json:"season"`
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	if c.Name() != "json" {
		t.Fatalf("Name() = %q, want json", c.Name())
	}

	data, err := c.Marshal(ping{LeagueID: "abc", Season: 2025})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"leagueId":"abc","season":2025}` {
		t.Errorf("Marshal() = %s", data)
	}

	var got ping
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.LeagueID != "abc" || got.Season != 2025 {
		t.Errorf("Unmarshal() = %+v", got)
	}
}

func TestJSONCodecEmptyBody(t *testing.T) {
	var got ping
	if err := (jsonCodec{}).Unmarshal(nil, &got); err != nil {
		t.Errorf("Unmarshal(nil) error = %v", err)
	}
}

func TestJSONCodecIsStable(t *testing.T) {
	c := jsonCodec{}
	msg := map[string]int{"b": 2, "a": 1, "c": 3}
	first, err := c.MarshalStable(msg)
	if err != nil {
		t.Fatalf("MarshalStable() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _ := c.MarshalStable(msg)
		if string(again) != string(first) {
			t.Fatalf("MarshalStable() = %s, then %s", first, again)
		}
	}
	if string(first) != `{"a":1,"b":2,"c":3}` {
		t.Errorf("MarshalStable() = %s", first)
	}
	if c.IsBinary() {
		t.Error("IsBinary() = true, want false")
	}
}
