// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Updater is the interface that custom components built using reflection must implement.
// See MakePart.
//
type Updater interface {
	Update(*Circuit)
}

// MakePart wraps an Updater into a custom component.
// Input/output pins are identified by field tags.
//
// The field tag must be `hw:"in"` or `hw:"out"` to identify input and output
// pins. By default, the pin name is the field name in lowercase. A specific
// pin name can be forced by adding it in the tag: `hw:"in,pin_name"`.
//
// Pins must be exported fields of type int and buses must be arrays of int. When the part is
// mounted, a new value of the underlying struct type is allocated and its
// pin fields are set to the pin numbers allocated in the circuit. Other fields
// are left to their zero value and can be used to hold state.
//
func MakePart(t Updater) *PartSpec {
	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for %q", k, typ.Name()))
	}

	sp := &PartSpec{
		Name: typ.Name(),
	}

	for _, f := range fieldPins(typ) {
		if f.isInput {
			sp.Inputs = append(sp.Inputs, f.names...)
		} else {
			sp.Outputs = append(sp.Outputs, f.names...)
		}
	}
	sp.Mount = mountPart(typ)
	return sp
}

type fieldPin struct {
	index   int
	isInput bool
	names   []string
}

func fieldPins(typ reflect.Type) []fieldPin {
	var fps []fieldPin
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		fp := fieldPin{index: i}
		pin := strings.ToLower(f.Name)
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if len(tv) == 2 && tv[1] != "" {
			pin = tv[1]
		}
		switch tv[0] {
		case "in":
			fp.isInput = true
		case "out":
		default:
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}

		ft := f.Type
		if k := ft.Kind(); k == reflect.Array && ft.Elem().Kind() == reflect.Int {
			for b := 0; b < ft.Len(); b++ {
				fp.names = append(fp.names, pin+"["+strconv.Itoa(b)+"]")
			}
		} else if k == reflect.Int {
			fp.names = []string{pin}
		} else {
			panic(errors.Errorf("unsupported type %q for field %q in %q", k, f.Name, typ.Name()))
		}
		fps = append(fps, fp)
	}
	return fps
}

func mountPart(typ reflect.Type) MountFn {
	fps := fieldPins(typ)
	return func(s *Socket) []Component {
		v := reflect.New(typ)
		e := v.Elem()
		for _, fp := range fps {
			fv := e.Field(fp.index)
			if fv.Kind() == reflect.Array {
				for b, name := range fp.names {
					fv.Index(b).SetInt(int64(s.Pin(name)))
				}
			} else {
				fv.SetInt(int64(s.Pin(fp.names[0])))
			}
		}
		return []Component{v.Interface().(Updater).Update}
	}
}
