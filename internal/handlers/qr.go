package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// HandleQR serves a QR code pointing at the room's audience display
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	room, ok := ctx.requireRoom(w, r)
	if !ok {
		return
	}
	png, err := qrcode.Encode(ctx.screenURL(room.Code), qrcode.Medium, 256)
	if err != nil {
		ctx.Logger.Error("encoding qr code", "room", room.Code, "error", err)
		http.Error(w, "Could not generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
