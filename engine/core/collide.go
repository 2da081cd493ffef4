package core

// DoesCollide reports whether two axis-aligned rectangles strictly
// overlap. Rectangles that touch only at an edge or corner do not
// collide.
func DoesCollide(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x2 < x1+w1 && y1 < y2+h2 && y2 < y1+h1
}
