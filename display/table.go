package display

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/astypes/typemap"
)

// TypeInfo describes one registered facet for listings.
type TypeInfo struct {
	TypeName string   `json:"type_name,omitempty"`
	Base     string   `json:"base,omitempty"`
	Kind     string   `json:"kind"`
	Flags    []string `json:"flags,omitempty"`
	Fields   []string `json:"fields,omitempty"`
}

// RegistryTypes lists the facets of reg in Descriptors order.
func RegistryTypes(reg *typemap.Registry) []TypeInfo {
	descs := reg.Descriptors()
	out := make([]TypeInfo, 0, len(descs))
	for _, d := range descs {
		info := TypeInfo{
			TypeName: d.TypeName,
			Base:     d.BaseTypeName,
			Kind:     d.Kind().String(),
			Fields:   d.Fields(),
		}
		if d.Implicit {
			info.Flags = append(info.Flags, "implicit")
		}
		if d.IsAnonymous() {
			info.Flags = append(info.Flags, "anonymous")
		}
		if d.IsLink() {
			info.Flags = append(info.Flags, "link")
		}
		out = append(out, info)
	}
	return out
}

// TypesTable converts infos into pterm table data with a header row.
func TypesTable(infos []TypeInfo) pterm.TableData {
	data := pterm.TableData{{"Type", "Base", "Kind", "Flags", "Fields"}}
	for _, info := range infos {
		data = append(data, []string{
			info.TypeName,
			info.Base,
			info.Kind,
			strings.Join(info.Flags, ","),
			truncate(strings.Join(info.Fields, ", ")),
		})
	}
	return data
}

// RenderTypes draws the registry listing as a table.
func RenderTypes(reg *typemap.Registry) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(TypesTable(RegistryTypes(reg))).Srender()
}
