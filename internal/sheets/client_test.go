package sheets

import "testing"

func TestToContact(t *testing.T) {
	c := &Client{columns: DefaultColumns}

	tests := []struct {
		name string
		row  []interface{}
		want map[string]string
	}{
		{
			name: "full row",
			row:  []interface{}{"John", "Doe", "college", "john.doe@gmail.com", "monthly"},
			want: map[string]string{
				"first": "John", "last": "Doe", "source": "college",
				"email": "john.doe@gmail.com", "freq": "monthly",
			},
		},
		{
			name: "short row leaves trailing fields empty",
			row:  []interface{}{"Ann", "Able"},
			want: map[string]string{"first": "Ann", "last": "Able", "source": "", "email": "", "freq": ""},
		},
		{
			name: "cells are trimmed",
			row:  []interface{}{" Ann ", "Able", "", " ann@example.com ", " weekly"},
			want: map[string]string{"first": "Ann", "last": "Able", "source": "", "email": "ann@example.com", "freq": "weekly"},
		},
		{
			name: "non-string cells ignored",
			row:  []interface{}{"Ann", 42, nil, "ann@example.com", "weekly"},
			want: map[string]string{"first": "Ann", "last": "", "source": "", "email": "ann@example.com", "freq": "weekly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.toContact(tt.row)
			if got.First != tt.want["first"] || got.Last != tt.want["last"] ||
				got.Source != tt.want["source"] || got.Email != tt.want["email"] ||
				got.TargetFrequency != tt.want["freq"] {
				t.Errorf("toContact(%v) = %+v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

func TestToContact_CustomColumnOrder(t *testing.T) {
	c := &Client{columns: []string{"email", "targetFrequency", "first"}}

	got := c.toContact([]interface{}{"ann@example.com", "weekly", "Ann"})
	if got.Email != "ann@example.com" || got.TargetFrequency != "weekly" || got.First != "Ann" {
		t.Errorf("toContact() = %+v", got)
	}
}
