package cmds

import (
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if slices.Contains(command.Aliases, name) {
			continue
		}

		names := append([]string{name}, command.Aliases...)
		var params []string
		fnType := command.Func.Type()
		for i := 0; i < fnType.NumIn(); i++ {
			t := fnType.In(i)
			if t.Kind() == reflect.Pointer {
				params = append(params, "["+t.Elem().Kind().String()+"]")
			} else {
				params = append(params, "<"+t.Kind().String()+">")
			}
		}
		fmt.Fprintf(tw, "  %s %s\t%s\n",
			strings.Join(names, ", "),
			strings.Join(params, " "),
			command.Description,
		)
	}
	tw.Flush()
}
