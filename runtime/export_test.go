package ber

// ReadLengthWidth exposes the length decoder with an explicit counter width.
func ReadLengthWidth(c *Cursor, width int) (uint, error) { return c.readLength(width) }

const LengthWidth = lengthWidth
