package encode

type EncodeOption func(*encState)

func WithColors(c *Colors) EncodeOption {
	return func(es *encState) { es.Color = c.Color }
}
