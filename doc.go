/*
Package bft reads and writes trees of typed scalar values in a compact,
line-oriented text format, and pretty-prints them for inspection.

Every node holds a Value: an Int, a Float or a Text. The text format lists
the tree breadth-first, two lines per node that has children: a label line
with the node's value, followed by a children line with the values of its
children separated by spaces.

	p1
	c1 c2 c3
	c1
	10 11 1.1
	c2
	aaa

Here p1 is the root with children c1, c2 and c3; c1 has three numeric
children and c2 has one. c3 and all the grandchildren are leaves, so they
never get label lines of their own. Label lines must appear in the order
their nodes were introduced, which is what lets the decoder rebuild the tree
in a single pass without indentation or parent references.

Values are typed when read. A token that is entirely an integer becomes an
Int, otherwise one that is entirely a float becomes a Float, and anything
else becomes Text:

	bft.Classify("10")   // Int(10)
	bft.Classify("1.1")  // Float(1.1)
	bft.Classify("10+1") // Text("10+1")

Labels are matched by variant and value, so a label line "10" never matches a
node holding Text("10").

Decoding and encoding follow encoding/json:

	t, err := bft.Unmarshal(data)
	if err != nil {
		var merr *bft.MismatchError
		if errors.As(err, &merr) {
			// merr.Line is the offending label line
		}
	}
	out, err := bft.Marshal(t)

Marshal writes canonical form: label lines trimmed, children separated by a
single space, numbers re-rendered. Decoding canonical output yields the same
tree again.

Tree.Print writes an indented dump, optionally colored:

	t.Print(os.Stdout, 1, bft.AutoColor())
*/
package bft
