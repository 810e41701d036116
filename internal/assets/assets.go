package assets

import (
	"bytes"
	"embed"
	"encoding/binary"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed images/*.svg
var imageFS embed.FS

// 简单缓存，避免同一尺寸重复渲染 SVG
var imgCache = map[string]*ebiten.Image{}

// LoadImage 加载嵌入的 SVG（不含扩展名）并按 size×size 像素栅格化
func LoadImage(name string, size int) (*ebiten.Image, error) {
	key := fmt.Sprintf("%s@%d", name, size)
	if img, ok := imgCache[key]; ok {
		return img, nil
	}
	data, err := imageFS.ReadFile("images/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("read embedded image %s: %w", name, err)
	}
	rgba, err := rasterizeSVG(data, size, size)
	if err != nil {
		return nil, fmt.Errorf("rasterize %s: %w", name, err)
	}
	img := ebiten.NewImageFromImage(rgba)
	imgCache[key] = img
	return img, nil
}

// —— 把 SVG 字节渲染为 RGBA —— //
func rasterizeSVG(svgData []byte, targetW, targetH int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	vb := icon.ViewBox

	// 决定像素尺寸（保持比例）
	w := float64(targetW)
	h := float64(targetH)
	switch {
	case w <= 0 && h <= 0:
		w, h = vb.W, vb.H
	case w <= 0:
		w = h * vb.W / vb.H
	case h <= 0:
		h = w * vb.H / vb.W
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	icon.SetTarget(0, 0, w, h)

	dstW, dstH := int(w+0.5), int(h+0.5)
	rgba := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	// 透明底
	draw.Draw(rgba, rgba.Bounds(), image.Transparent, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(dstW, dstH, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(dstW, dstH, scanner)
	icon.Draw(dasher, 1.0)

	return rgba, nil
}

// AudioManager 播放合成的短音效。没有音频文件，音色在启动时生成。
type AudioManager struct {
	ctx    *audio.Context
	clips  map[string][]byte
	active []*audio.Player
}

type toneSpec struct {
	freqs []float64 // 叠加的频率
	dur   float64   // 秒
	decay float64   // 衰减速度
}

var toneSpecs = map[string]toneSpec{
	"place":     {freqs: []float64{880}, dur: 0.05, decay: 60},
	"flip":      {freqs: []float64{1320}, dur: 0.03, decay: 90},
	"undo":      {freqs: []float64{440}, dur: 0.08, decay: 35},
	"game_over": {freqs: []float64{523.25, 659.25, 783.99}, dur: 0.6, decay: 6},
}

func NewAudioManager(ctx *audio.Context) (*AudioManager, error) {
	if ctx == nil {
		return nil, fmt.Errorf("audio context not initialized")
	}
	am := &AudioManager{ctx: ctx, clips: make(map[string][]byte, len(toneSpecs))}
	for name, spec := range toneSpecs {
		am.clips[name] = synthTone(ctx.SampleRate(), spec)
	}
	return am, nil
}

// synthTone 生成 16 位小端立体声 PCM：若干正弦叠加 + 指数衰减包络
func synthTone(sampleRate int, spec toneSpec) []byte {
	n := int(float64(sampleRate) * spec.dur)
	buf := make([]byte, 0, n*4)
	amp := 0.3 / float64(len(spec.freqs))
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-spec.decay * t)
		v := 0.0
		for _, f := range spec.freqs {
			v += math.Sin(2 * math.Pi * f * t)
		}
		s := int16(v * amp * env * math.MaxInt16)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}
	return buf
}

// Play 播放指定音效；未知名字静默忽略
func (am *AudioManager) Play(name string) {
	if am == nil {
		return
	}
	data, ok := am.clips[name]
	if !ok {
		return
	}
	p := am.ctx.NewPlayerFromBytes(data)
	p.Play()
	am.active = append(am.active, p)
}

// Update 回收已经播完的 Player，每帧调用一次
func (am *AudioManager) Update() {
	if am == nil {
		return
	}
	kept := am.active[:0]
	for _, p := range am.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	am.active = kept
}
