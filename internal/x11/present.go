package x11

import (
	"image"

	"github.com/BurntSushi/xgb/xproto"
)

// Present uploads the surface to the window with ZPixmap PutImage requests,
// split into row bands that fit the server's maximum request length.
func (w *Window) Present() {
	img := w.surface
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width == 0 || height == 0 || w.gc == 0 {
		return
	}

	rows := bandRows(width, w.conn.maxPut)
	if need := rows * width * 4; cap(w.scratch) < need {
		w.scratch = make([]byte, need)
	}

	conn := w.conn.XUtil.Conn()
	depth := w.conn.XUtil.Screen().RootDepth
	for y0 := 0; y0 < height; y0 += rows {
		n := min(rows, height-y0)
		data := w.scratch[:n*width*4]
		encodeBGRX(data, img, y0, n)
		xproto.PutImage(conn, xproto.ImageFormatZPixmap, xproto.Drawable(w.win.Id), w.gc,
			uint16(width), uint16(n), 0, int16(y0), 0, depth, data)
	}
}

// bandRows returns how many rows of a width-pixel image fit in one request.
func bandRows(width, maxBytes int) int {
	rows := maxBytes / (width * 4)
	if rows < 1 {
		return 1
	}
	return rows
}

// encodeBGRX converts rows [y0, y0+n) of img to the 32-bit little-endian
// TrueColor layout X servers use for depth 24 and 32.
func encodeBGRX(dst []byte, img *image.RGBA, y0, n int) {
	width := img.Bounds().Dx()
	for y := 0; y < n; y++ {
		src := img.Pix[(y0+y)*img.Stride:]
		row := dst[y*width*4:]
		for x := 0; x < width; x++ {
			row[x*4+0] = src[x*4+2]
			row[x*4+1] = src[x*4+1]
			row[x*4+2] = src[x*4+0]
			row[x*4+3] = 0
		}
	}
}
