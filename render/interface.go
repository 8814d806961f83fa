package render

// Renderer draws one layer of the frame
type Renderer interface {
	Render(ctx Context, buf *Buffer)
}
