/*
Package w3cdom defines an interface type for W3C Document Object Models.

See also https://www.w3schools.com/XML/dom_intro.asp

Status

Early draft—API may change frequently. Please stay patient.

The interfaces cover the navigational subset of the W3C DOM needed for
deriving selectors from the position of an element and for drawing DOM
trees. There is no support for computed styles: stylesheets are built,
not resolved.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"golang.org/x/net/html"
)

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType      // type of the underlying HTML node (ElementNode, TextNode, etc.)
	NodeName() string             // node name output depends on the node's type
	NodeValue() string            // node value output depends on the node's type
	HasAttributes() bool          // check for existence of attributes
	ChildNodes() NodeList         // get a list of all children-nodes
	PreviousElementSibling() Node // get the closest preceding element sibling or nil
	Attributes() NamedNodeMap     // get all attributes of a node
}

// NodeList represents W3C-type NodeList
type NodeList interface {
	Length() int
	Item(int) Node
}

// Attr represents W3C-type Attr
type Attr interface {
	Key() string
	Value() string
}

// NamedNodeMap represents w3C-type NamedNodeMap
type NamedNodeMap interface {
	Length() int
	Item(int) Attr
}
