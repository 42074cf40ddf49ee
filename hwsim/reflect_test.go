// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim_test

import (
	"reflect"
	"testing"

	"github.com/db47h/counter8/hwlib"
	"github.com/db47h/counter8/hwsim"
	"github.com/db47h/counter8/hwtest"
)

type testPart struct {
	A   [4]int `hw:"in"`
	B   [4]int `hw:"in"`
	Sel int    `hw:"in"`
	Out [4]int `hw:"out"`
}

func (t *testPart) Update(c *hwsim.Circuit) {
	src := t.A
	if c.Get(t.Sel) {
		src = t.B
	}
	for i, p := range src {
		c.Set(t.Out[i], c.Get(p))
	}
}

func Test_MakePart(t *testing.T) {
	m, err := hwsim.Chip("myMux4", "a[4], b[4], sel", "out[4]",
		hwlib.Mux("a=a[0], b=b[0], sel=sel, out=out[0]"),
		hwlib.Mux("a=a[1], b=b[1], sel=sel, out=out[1]"),
		hwlib.Mux("a=a[2], b=b[2], sel=sel, out=out[2]"),
		hwlib.Mux("a=a[3], b=b[3], sel=sel, out=out[3]"),
	)
	if err != nil {
		t.Fatal(err)
	}

	spec := hwsim.MakePart((*testPart)(nil))
	if spec.Name != "testPart" {
		t.Errorf("expected name testPart, got %q", spec.Name)
	}
	if !reflect.DeepEqual(spec.Inputs, hwsim.IO("a[4], b[4], sel")) || !reflect.DeepEqual(spec.Outputs, hwsim.IO("out[4]")) {
		t.Errorf("unexpected pins %v => %v", spec.Inputs, spec.Outputs)
	}
	hwtest.ComparePart(t, testTPC, m, spec.NewPart)
}

type badTag struct {
	In int `hw:"inout"`
}

func (*badTag) Update(*hwsim.Circuit) {}

type badType struct {
	In bool `hw:"in"`
}

func (*badType) Update(*hwsim.Circuit) {}

type notStruct int

func (notStruct) Update(*hwsim.Circuit) {}

func TestMakePart_panics(t *testing.T) {
	for _, u := range []hwsim.Updater{(*badTag)(nil), (*badType)(nil), notStruct(0)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("MakePart(%T) did not panic", u)
				}
			}()
			hwsim.MakePart(u)
		}()
	}
}
