package cli

import (
	"reflect"
	"testing"
)

func TestTargetsValueSet(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		want    map[int]float64
		wantErr bool
	}{
		{
			name:   "single target",
			inputs: []string{"2=4.5"},
			want:   map[int]float64{2: 4.5},
		},
		{
			name:   "multiple targets",
			inputs: []string{"0=1.1", "9=7", "17=15"},
			want:   map[int]float64{0: 1.1, 9: 7, 17: 15},
		},
		{
			name:   "repeated index overwrites",
			inputs: []string{"3=3.0", "3=4.5"},
			want:   map[int]float64{3: 4.5},
		},
		{
			name:   "whitespace tolerated",
			inputs: []string{" 4 = 4.5 "},
			want:   map[int]float64{4: 4.5},
		},
		{
			name:    "missing separator",
			inputs:  []string{"4.5"},
			wantErr: true,
		},
		{
			name:    "non-numeric index",
			inputs:  []string{"two=4.5"},
			wantErr: true,
		},
		{
			name:    "non-numeric ratio",
			inputs:  []string{"2=high"},
			wantErr: true,
		},
		{
			name:    "negative index",
			inputs:  []string{"-1=4.5"},
			wantErr: true,
		},
		{
			name:    "ratio below 1",
			inputs:  []string{"2=0.5"},
			wantErr: true,
		},
		{
			name:    "ratio above 21",
			inputs:  []string{"2=25"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTargetsValue()
			var err error
			for _, in := range tt.inputs {
				if err = v.Set(in); err != nil {
					break
				}
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := v.Map(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetsValueString(t *testing.T) {
	v := newTargetsValue()
	if v.String() != "" {
		t.Errorf("empty String() = %q", v.String())
	}

	for _, in := range []string{"9=7", "2=4.5"} {
		if err := v.Set(in); err != nil {
			t.Fatal(err)
		}
	}
	// Sorted by index regardless of insertion order.
	if got := v.String(); got != "2=4.5,9=7" {
		t.Errorf("String() = %q, want %q", got, "2=4.5,9=7")
	}
}

func TestTargetsValueMapIsCopy(t *testing.T) {
	v := newTargetsValue()
	if err := v.Set("2=4.5"); err != nil {
		t.Fatal(err)
	}

	m := v.Map()
	m[2] = 99
	if v.targets[2] != 4.5 {
		t.Error("Map() returned a reference to internal state")
	}
}

func TestTargetsValueEmptyMapIsNil(t *testing.T) {
	if newTargetsValue().Map() != nil {
		t.Error("Map() on empty value should be nil")
	}
}
