package formatter

import (
	"fmt"
	"text/template/parse"

	"github.com/samber/lo"
)

// unsetParams returns the params that may have no value at render time.
func (d *Definition) unsetParams() map[string]bool {
	unset := make(map[string]bool)
	for _, p := range d.Params {
		if !p.Required && p.Default == nil {
			unset[p.Name] = true
		}
	}

	return unset
}

// checkGuarded rejects a line using a param that may have no value outside
// an {{if}}, {{with}} or {{range}} on it. text/template would print such a
// value as "<no value>".
func checkGuarded(tree *parse.Tree, unset map[string]bool) error {
	if len(unset) == 0 || tree == nil {
		return nil
	}

	return walkGuarded(tree.Root, unset, nil)
}

func walkGuarded(node parse.Node, unset, guarded map[string]bool) error {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return nil
		}

		for _, child := range n.Nodes {
			if err := walkGuarded(child, unset, guarded); err != nil {
				return err
			}
		}
	case *parse.ActionNode:
		return checkPipe(n.Pipe, unset, guarded)
	case *parse.TemplateNode:
		return checkPipe(n.Pipe, unset, guarded)
	case *parse.IfNode:
		return walkBranch(&n.BranchNode, unset, guarded)
	case *parse.WithNode:
		return walkBranch(&n.BranchNode, unset, guarded)
	case *parse.RangeNode:
		return walkBranch(&n.BranchNode, unset, guarded)
	}

	return nil
}

// walkBranch guards the body with the fields tested by the branch. The else
// branch runs exactly when they are unset.
func walkBranch(b *parse.BranchNode, unset, guarded map[string]bool) error {
	inner := lo.Assign(guarded)
	for _, name := range pipeFields(b.Pipe) {
		inner[name] = true
	}

	if err := walkGuarded(b.List, unset, inner); err != nil {
		return err
	}

	return walkGuarded(b.ElseList, unset, guarded)
}

func checkPipe(pipe *parse.PipeNode, unset, guarded map[string]bool) error {
	for _, name := range pipeFields(pipe) {
		if unset[name] && !guarded[name] {
			return fmt.Errorf("param %q has no default and is used outside {{if}} or {{with}}", name)
		}
	}

	return nil
}

// pipeFields lists the top level fields referenced by pipe, {{.x}} and
// {{.x.y}} both reference x.
func pipeFields(pipe *parse.PipeNode) []string {
	if pipe == nil {
		return nil
	}

	var fields []string
	for _, cmd := range pipe.Cmds {
		for _, arg := range cmd.Args {
			switch a := arg.(type) {
			case *parse.FieldNode:
				fields = append(fields, a.Ident[0])
			case *parse.ChainNode:
				if field, ok := a.Node.(*parse.FieldNode); ok {
					fields = append(fields, field.Ident[0])
				}
			case *parse.PipeNode:
				fields = append(fields, pipeFields(a)...)
			}
		}
	}

	return fields
}
