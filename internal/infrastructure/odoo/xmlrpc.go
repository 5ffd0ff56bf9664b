// Package odoo implementa el gateway hacia el ERP Odoo sobre XML-RPC 2.
//
// El protocolo lo dicta Odoo: methodCall/methodResponse con valores tipados
// (string, int, double, boolean, array, struct). La codificación se hace con
// etree; no hay esquema propio.
package odoo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Fault error remoto reportado por el servidor XML-RPC.
type Fault struct {
	Code    int64
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("odoo: fault %d: %s", f.Code, f.Message)
}

// encodeMethodCall serializa un methodCall XML-RPC completo.
func encodeMethodCall(method string, params []any) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	call := doc.CreateElement("methodCall")
	call.CreateElement("methodName").SetText(method)
	ps := call.CreateElement("params")
	for _, p := range params {
		value := ps.CreateElement("param").CreateElement("value")
		if err := encodeValue(value, p); err != nil {
			return nil, err
		}
	}
	return doc.WriteToBytes()
}

// encodeValue escribe un valor tipado dentro de un elemento <value>.
func encodeValue(parent *etree.Element, v any) error {
	switch t := v.(type) {
	case nil:
		// Odoo representa False/None como boolean 0
		parent.CreateElement("boolean").SetText("0")
	case bool:
		if t {
			parent.CreateElement("boolean").SetText("1")
		} else {
			parent.CreateElement("boolean").SetText("0")
		}
	case string:
		parent.CreateElement("string").SetText(t)
	case int:
		parent.CreateElement("int").SetText(strconv.Itoa(t))
	case int64:
		parent.CreateElement("int").SetText(strconv.FormatInt(t, 10))
	case float64:
		parent.CreateElement("double").SetText(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		data := parent.CreateElement("array").CreateElement("data")
		for _, item := range t {
			if err := encodeValue(data.CreateElement("value"), item); err != nil {
				return err
			}
		}
	case map[string]any:
		st := parent.CreateElement("struct")
		for name, item := range t {
			member := st.CreateElement("member")
			member.CreateElement("name").SetText(name)
			if err := encodeValue(member.CreateElement("value"), item); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("odoo: tipo no soportado en XML-RPC: %T", v)
	}
	return nil
}

// decodeMethodResponse interpreta un methodResponse. Devuelve *Fault como
// error cuando el servidor reporta un fallo remoto.
func decodeMethodResponse(data []byte) (any, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("odoo: respuesta XML inválida: %w", err)
	}
	root := doc.SelectElement("methodResponse")
	if root == nil {
		return nil, fmt.Errorf("odoo: respuesta sin methodResponse")
	}

	if fault := root.SelectElement("fault"); fault != nil {
		return nil, decodeFault(fault)
	}

	params := root.SelectElement("params")
	if params == nil {
		return nil, fmt.Errorf("odoo: respuesta sin params ni fault")
	}
	param := params.SelectElement("param")
	if param == nil {
		return nil, fmt.Errorf("odoo: respuesta sin param")
	}
	value := param.SelectElement("value")
	if value == nil {
		return nil, fmt.Errorf("odoo: respuesta sin value")
	}
	return decodeValue(value)
}

func decodeFault(fault *etree.Element) error {
	f := &Fault{Message: "fallo remoto desconocido"}
	value := fault.SelectElement("value")
	if value == nil {
		return f
	}
	decoded, err := decodeValue(value)
	if err != nil {
		return f
	}
	if m, ok := decoded.(map[string]any); ok {
		if s, ok := m["faultString"].(string); ok {
			f.Message = strings.TrimSpace(s)
		}
		if c, ok := m["faultCode"].(int64); ok {
			f.Code = c
		}
	}
	return f
}

// decodeValue interpreta un <value>. Sin elemento de tipo, XML-RPC asume string.
func decodeValue(value *etree.Element) (any, error) {
	children := value.ChildElements()
	if len(children) == 0 {
		return value.Text(), nil
	}
	el := children[0]
	switch el.Tag {
	case "string":
		return el.Text(), nil
	case "int", "i4", "i8":
		n, err := strconv.ParseInt(strings.TrimSpace(el.Text()), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("odoo: int inválido %q: %w", el.Text(), err)
		}
		return n, nil
	case "double":
		f, err := strconv.ParseFloat(strings.TrimSpace(el.Text()), 64)
		if err != nil {
			return nil, fmt.Errorf("odoo: double inválido %q: %w", el.Text(), err)
		}
		return f, nil
	case "boolean":
		return strings.TrimSpace(el.Text()) == "1", nil
	case "nil":
		return nil, nil
	case "array":
		var items []any
		if data := el.SelectElement("data"); data != nil {
			for _, v := range data.SelectElements("value") {
				item, err := decodeValue(v)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
		}
		return items, nil
	case "struct":
		m := make(map[string]any)
		for _, member := range el.SelectElements("member") {
			name := member.SelectElement("name")
			v := member.SelectElement("value")
			if name == nil || v == nil {
				continue
			}
			item, err := decodeValue(v)
			if err != nil {
				return nil, err
			}
			m[name.Text()] = item
		}
		return m, nil
	default:
		return el.Text(), nil
	}
}
