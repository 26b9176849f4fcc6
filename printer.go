/*
   Copyright 2026 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package btengine

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

type (
	// Printer models something providing model tree printing capabilities
	Printer interface {
		// Fprint writes a representation of the tree rooted at task to output
		Fprint(output io.Writer, task ModelTask) error
	}

	// TreePrinter provides a generalised implementation of Printer used as the DefaultPrinter
	TreePrinter struct {
		// Inspector configures the meta and value for a model task
		Inspector func(task ModelTask) (meta []interface{}, value interface{})
		// Formatter initialises a new printer tree and returns it as a TreePrinterNode
		Formatter func() TreePrinterNode
	}

	// TreePrinterNode models a tree node for printing and is used by the TreePrinter implementation in this package
	TreePrinterNode interface {
		// Add should wire up a new node to the receiver then return it
		Add(meta []interface{}, value interface{}) TreePrinterNode
		// Bytes should encode the node and all children in preparation for use within TreePrinter
		Bytes() []byte
	}

	treePrinterNodeXlab struct {
		node treeprint.Tree
	}
)

var (
	// DefaultPrinter is used by Sprint
	DefaultPrinter Printer = TreePrinter{
		Inspector: DefaultPrinterInspector,
		Formatter: DefaultPrinterFormatter,
	}
)

// Sprint renders the model tree rooted at task using DefaultPrinter
func Sprint(task ModelTask) string {
	var b bytes.Buffer
	if err := DefaultPrinter.Fprint(&b, task); err != nil {
		return fmt.Sprintf(`btengine.DefaultPrinter error: %s`, err)
	}
	return b.String()
}

// DefaultPrinterFormatter is used by DefaultPrinter
func DefaultPrinterFormatter() TreePrinterNode { return new(treePrinterNodeXlab) }

// DefaultPrinterInspector is used by DefaultPrinter, the meta is the task's position, the value is the kind plus a
// guard marker
func DefaultPrinterInspector(task ModelTask) ([]interface{}, interface{}) {
	if task == nil {
		return []interface{}{`-`}, `<nil>`
	}
	value := task.Kind()
	if task.Guard() != nil {
		value += ` [guarded]`
	}
	return []interface{}{task.Position().String()}, value
}

// Fprint implements Printer.Fprint
func (p TreePrinter) Fprint(output io.Writer, task ModelTask) error {
	tree := p.Formatter()
	p.build(tree, task)
	_, err := io.Copy(output, bytes.NewReader(tree.Bytes()))
	return err
}

func (p TreePrinter) build(tree TreePrinterNode, task ModelTask) {
	if task != nil {
		tree = tree.Add(p.Inspector(task))
		for _, child := range task.Children() {
			p.build(tree, child)
		}
	}
}

func (n *treePrinterNodeXlab) Add(meta []interface{}, value interface{}) TreePrinterNode {
	m := fmt.Sprint(meta...)
	if n.node == nil {
		n.node = treeprint.New()
		n.node.SetMetaValue(m)
		n.node.SetValue(value)
		return n
	}
	return &treePrinterNodeXlab{node: n.node.AddMetaBranch(m, value)}
}

func (n *treePrinterNodeXlab) Bytes() []byte {
	if n := n.node; n != nil {
		b := n.Bytes()
		if l := len(b); l != 0 && b[l-1] == '\n' {
			b = b[:l-1]
		}
		return b
	}
	return []byte(`<nil>`)
}
