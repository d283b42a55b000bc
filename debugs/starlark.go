package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/taisp/lisp"
	"go.starlark.net/starlark"
)

func nodeToStarlark(node *lisp.Node) starlark.Value {
	d := starlark.NewDict(4)
	d.SetKey(starlark.String("kind"), starlark.String(node.Kind.String()))
	switch node.Kind {
	case lisp.NodeNumber:
		d.SetKey(starlark.String("value"), starlark.MakeInt64(node.Int))
	case lisp.NodeString, lisp.NodeSymbol:
		d.SetKey(starlark.String("value"), starlark.String(node.Text))
	case lisp.NodeList:
		children := make([]starlark.Value, len(node.Children))
		for i, child := range node.Children {
			children[i] = nodeToStarlark(child)
		}
		d.SetKey(starlark.String("children"), starlark.NewList(children))
	}
	if node.Pos.Line > 0 {
		d.SetKey(starlark.String("line"), starlark.MakeInt(node.Pos.Line))
		d.SetKey(starlark.String("column"), starlark.MakeInt(node.Pos.Column))
	}
	return d
}

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case *lisp.Node:
		if v == nil {
			return starlark.None
		}
		return nodeToStarlark(v)

	case lisp.Value:
		switch v.Kind {
		case lisp.ValueNumber:
			return starlark.MakeInt64(v.Int)
		default:
			return starlark.String(v.Text)
		}

	case error:
		return starlark.String(v.Error())

	case bool:
		return starlark.Bool(v)

	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case uint64:
		return starlark.MakeUint64(v)

	case float64:
		return starlark.Float(v)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		n := value.NumField()
		d := starlark.NewDict(n)
		typ := value.Type()
		for i := range n {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
