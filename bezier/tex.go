package bezier

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pipes"
)

// ToTex returns the general formula of q in TeX notation, with symbolic t
// and the coordinates of the control points:
//
//	B(t) = (1-t)^{2}\begin{pmatrix}0\\0\end{pmatrix} + 2(1-t)t\begin{pmatrix}50\\0\end{pmatrix} + t^{2}\begin{pmatrix}100\\100\end{pmatrix}
func (q Quadratic) ToTex() string {
	var b strings.Builder
	b.WriteString("B(t) = (1-t)^{2}")
	b.WriteString(texVec(q.Start))
	b.WriteString(" + 2(1-t)t")
	b.WriteString(texVec(q.Control))
	b.WriteString(" + t^{2}")
	b.WriteString(texVec(q.End))
	return b.String()
}

// ToTexAt returns the formula of q evaluated at t. Coefficients are rounded
// to 2 decimal places; the result is appended:
//
//	B(0.25) = 0.56\begin{pmatrix}0\\0\end{pmatrix} + … = \begin{pmatrix}25\\6.25\end{pmatrix}
func (q Quadratic) ToTexAt(t float64) string {
	b0, b1, b2 := Bernstein(t)
	var b strings.Builder
	fmt.Fprintf(&b, "B(%s) = ", texNum(t))
	b.WriteString(texNum(b0))
	b.WriteString(texVec(q.Start))
	b.WriteString(" + ")
	b.WriteString(texNum(b1))
	b.WriteString(texVec(q.Control))
	b.WriteString(" + ")
	b.WriteString(texNum(b2))
	b.WriteString(texVec(q.End))
	b.WriteString(" = ")
	b.WriteString(texVec(q.At(t)))
	return b.String()
}

// ToTexExpanded returns the curve in power basis, one polynomial per axis.
func (q Quadratic) ToTexExpanded() string {
	x, y := q.Expanded()
	return fmt.Sprintf(`B(t) = \begin{pmatrix}%s\\%s\end{pmatrix}`, x.Tex("t"), y.Tex("t"))
}

func texVec(p pipes.Pair) string {
	return fmt.Sprintf(`\begin{pmatrix}%s\\%s\end{pmatrix}`, texNum(p.X()), texNum(p.Y()))
}

func texNum(n float64) string {
	return fmt.Sprintf("%g", pipes.Round2(n))
}
