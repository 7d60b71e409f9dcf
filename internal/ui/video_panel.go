package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// VideoPanel shows the thumbnail of the current video above its info text
type VideoPanel struct {
	localization *Localization

	thumbnail   *canvas.Image
	placeholder *widget.Label
	info        *widget.Label
	content     *fyne.Container
}

// NewVideoPanel creates an empty panel
func NewVideoPanel(localization *Localization) *VideoPanel {
	vp := &VideoPanel{localization: localization}

	vp.thumbnail = canvas.NewImageFromImage(nil)
	vp.thumbnail.FillMode = canvas.ImageFillContain
	vp.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	vp.thumbnail.Hide()

	vp.placeholder = widget.NewLabel("")
	vp.placeholder.Hide()

	vp.info = widget.NewLabel("")
	vp.info.Wrapping = fyne.TextWrapWord

	// Stack keeps the slot size whether the image or the placeholder is shown
	slot := container.NewStack(vp.thumbnail, container.NewCenter(vp.placeholder))
	vp.content = container.NewVBox(container.NewHBox(slot), vp.info)
	return vp
}

// Container returns the panel's canvas object
func (vp *VideoPanel) Container() *fyne.Container {
	return vp.content
}

// SetInfo replaces the info text
func (vp *VideoPanel) SetInfo(text string) {
	vp.info.SetText(text)
}

// Info returns the current info text
func (vp *VideoPanel) Info() string {
	return vp.info.Text
}

// SetThumbnail shows img
func (vp *VideoPanel) SetThumbnail(img image.Image) {
	vp.placeholder.Hide()
	vp.thumbnail.Image = img
	vp.thumbnail.Show()
	vp.thumbnail.Refresh()
}

// ShowThumbnailUnavailable replaces the image with a notice
func (vp *VideoPanel) ShowThumbnailUnavailable() {
	vp.thumbnail.Image = nil
	vp.thumbnail.Hide()
	vp.placeholder.SetText(vp.localization.GetText(KeyThumbnailMissing))
	vp.placeholder.Show()
}

// HasThumbnail reports whether an image is shown
func (vp *VideoPanel) HasThumbnail() bool {
	return vp.thumbnail.Visible() && vp.thumbnail.Image != nil
}

// PlaceholderText returns the notice shown instead of a thumbnail
func (vp *VideoPanel) PlaceholderText() string {
	if !vp.placeholder.Visible() {
		return ""
	}
	return vp.placeholder.Text
}

// Clear removes the image and the text
func (vp *VideoPanel) Clear() {
	vp.thumbnail.Image = nil
	vp.thumbnail.Hide()
	vp.placeholder.Hide()
	vp.info.SetText("")
}
