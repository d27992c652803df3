package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// QASM renders the circuit as an OpenQASM 2.0 program. V and Vdg are
// lowered to the standard-library sx and sxdg gates; the global phase
// is emitted as a comment since OpenQASM 2.0 cannot express it.
func (c *Circuit) QASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.numQubits)
	if c.globalPhase != 0 {
		fmt.Fprintf(&sb, "// global phase: %s\n", formatAngle(c.globalPhase))
	}
	for _, g := range c.gates {
		switch g.Kind {
		case H:
			fmt.Fprintf(&sb, "h q[%d];\n", g.Target)
		case V:
			fmt.Fprintf(&sb, "sx q[%d];\n", g.Target)
		case Vdg:
			fmt.Fprintf(&sb, "sxdg q[%d];\n", g.Target)
		case S:
			fmt.Fprintf(&sb, "s q[%d];\n", g.Target)
		case Sdg:
			fmt.Fprintf(&sb, "sdg q[%d];\n", g.Target)
		case Rz:
			fmt.Fprintf(&sb, "rz(%s) q[%d];\n", formatAngle(g.Theta), g.Target)
		case CX:
			fmt.Fprintf(&sb, "cx q[%d],q[%d];\n", g.Control, g.Target)
		}
	}
	return sb.String()
}

func formatAngle(theta float64) string {
	return strconv.FormatFloat(theta, 'g', -1, 64)
}
