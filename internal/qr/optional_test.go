package qr

import (
	"encoding/json"
	"testing"
)

func TestOptionalTriState(t *testing.T) {
	type payload struct {
		Bio  Optional[string] `json:"bio"`
		Name Optional[string] `json:"name"`
		Pub  Optional[bool]   `json:"isPublished"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"bio":null,"name":""}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !p.Bio.Set || p.Bio.Value != nil {
		t.Errorf("explicit null: Set=%v Value=%v, want Set=true Value=nil", p.Bio.Set, p.Bio.Value)
	}
	if !p.Name.Set || p.Name.Value == nil || *p.Name.Value != "" {
		t.Errorf("explicit empty string: Set=%v Value=%v", p.Name.Set, p.Name.Value)
	}
	if p.Pub.Set {
		t.Error("absent field must stay Set=false")
	}

	var q payload
	if err := json.Unmarshal([]byte(`{"isPublished":true}`), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !q.Pub.Set || q.Pub.Value == nil || !*q.Pub.Value {
		t.Errorf("explicit value: Set=%v Value=%v", q.Pub.Set, q.Pub.Value)
	}
}
