package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	scatterWidth  = 1024
	scatterHeight = 768
	wordBarHeight = 30
)

func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}

	// очень маленькие числа
	if maxValue < 1e-10 {
		return 1e-10
	}

	// порядок величины максимального значения
	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))

	// нормализуем к диапазону [1, 10)
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude

	// "красивые" шаги для больших значений
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}

	return finalStep
}

// generateTicks returns the axis top and ticks from 0 to it, spaced by the
// grid step of maxValue.
func generateTicks(maxValue float64) (float64, []chart.Tick) {
	step := calculateGridStep(maxValue)
	if step <= 0 {
		step = 1
	}
	top := math.Ceil(maxValue/step) * step
	if top <= 0 {
		top = step
	}

	n := int(math.Round(top / step))
	ticks := make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := float64(i) * step
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v, step)})
	}
	return top, ticks
}

func formatTick(v, step float64) string {
	switch {
	case step >= 1 && step == math.Trunc(step):
		return fmt.Sprintf("%.0f", v)
	case step >= 0.1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	max := y[0]
	for _, v := range y {
		if v > max {
			max = v
		}
	}
	return max
}

// DrawWordBar draws horizontal bars in the order given by data, the first bar
// on top, and returns PNG bytes.
func DrawWordBar(data dataForGraph) ([]byte, error) {
	bars := data.generateBarValues()
	if len(bars) == 0 {
		return nil, fmt.Errorf("error rendering chart: no bars")
	}
	width, height := data.calculateChartDimensions(wordBarHeight)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("error loading font: %v", err)
	}
	r.SetFont(font)

	fillBox(r, chart.Box{Top: 0, Left: 0, Right: width, Bottom: height}, drawing.ColorWhite, drawing.ColorWhite)

	const (
		paddingTop    = 60
		paddingBottom = 80
		paddingSide   = 30
		labelGap      = 10
	)

	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(16)
	title := data.GetNameGraph()
	titleBox := r.MeasureText(title)
	r.Text(title, (width-titleBox.Width())/2, paddingTop/2+titleBox.Height()/2)

	r.SetFontSize(12)
	labelWidth := 0
	for _, bar := range bars {
		if w := r.MeasureText(bar.Label).Width(); w > labelWidth {
			labelWidth = w
		}
	}

	area := chart.Box{
		Top:    paddingTop,
		Left:   paddingSide + 20 + labelWidth + labelGap,
		Right:  width - paddingSide,
		Bottom: height - paddingBottom,
	}
	top, ticks := generateTicks(findMaxValue(data.getYValues()))
	scaleX := func(v float64) int {
		return area.Left + int(v/top*float64(area.Width()))
	}

	// dashed vertical grid with tick labels under the plot
	r.SetStrokeColor(drawing.ColorFromHex("cccccc"))
	r.SetStrokeWidth(1)
	r.SetStrokeDashArray([]float64{5.0, 5.0})
	for _, tick := range ticks {
		x := scaleX(tick.Value)
		r.MoveTo(x, area.Top)
		r.LineTo(x, area.Bottom)
		r.Stroke()
	}
	r.SetStrokeDashArray(nil)
	for _, tick := range ticks {
		x := scaleX(tick.Value)
		tb := r.MeasureText(tick.Label)
		r.Text(tick.Label, x-tb.Width()/2, area.Bottom+labelGap+tb.Height())
	}

	rowHeight := float64(area.Height()) / float64(len(bars))
	for i, bar := range bars {
		y0 := area.Top + int(float64(i)*rowHeight+rowHeight*0.15)
		y1 := area.Top + int(float64(i+1)*rowHeight-rowHeight*0.15)
		if bar.Value > 0 {
			fillBox(r, chart.Box{Top: y0, Left: area.Left, Right: scaleX(bar.Value), Bottom: y1},
				bar.Style.FillColor, bar.Style.StrokeColor)
		}
		tb := r.MeasureText(bar.Label)
		r.Text(bar.Label, area.Left-labelGap-tb.Width(), (y0+y1)/2+tb.Height()/2)
	}

	// axes
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(2)
	r.MoveTo(area.Left, area.Top)
	r.LineTo(area.Left, area.Bottom)
	r.LineTo(area.Right, area.Bottom)
	r.Stroke()

	r.SetFontSize(14)
	xName := data.getNameXAxis()
	xb := r.MeasureText(xName)
	r.Text(xName, area.Left+(area.Width()-xb.Width())/2, height-paddingBottom/4)

	yName := data.getNameYAxis()
	yb := r.MeasureText(yName)
	r.SetTextRotation(-math.Pi / 2)
	r.Text(yName, paddingSide, area.Top+(area.Height()+yb.Width())/2)
	r.ClearTextRotation()

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

func fillBox(r chart.Renderer, b chart.Box, fill, stroke drawing.Color) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(1)
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.LineTo(b.Left, b.Top)
	r.Close()
	r.FillStroke()
}

func newScatterChart(data dataScatterForGraph) (chart.Chart, error) {
	series := data.generateSeries()
	if len(series) == 0 {
		return chart.Chart{}, fmt.Errorf("error rendering chart: no points")
	}

	graph := chart.Chart{
		Title:  data.GetNameGraph(),
		Width:  scatterWidth,
		Height: scatterHeight,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: drawing.ColorWhite,
		},
		XAxis:  data.generateXAxis(),
		YAxis:  data.generateYAxis(),
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph, nil
}

// DrawScatter renders one scatter view to PNG bytes.
func DrawScatter(data dataScatterForGraph) ([]byte, error) {
	graph, err := newScatterChart(data)
	if err != nil {
		return nil, err
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

// DrawCombinedScatter renders left and right side by side, each with its own axes.
func DrawCombinedScatter(left, right dataScatterForGraph) ([]byte, error) {
	leftPNG, err := DrawScatter(left)
	if err != nil {
		return nil, err
	}
	rightPNG, err := DrawScatter(right)
	if err != nil {
		return nil, err
	}

	leftImg, err := png.Decode(bytes.NewReader(leftPNG))
	if err != nil {
		return nil, fmt.Errorf("error decoding chart: %v", err)
	}
	rightImg, err := png.Decode(bytes.NewReader(rightPNG))
	if err != nil {
		return nil, fmt.Errorf("error decoding chart: %v", err)
	}

	lb, rb := leftImg.Bounds(), rightImg.Bounds()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}
	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), leftImg, lb.Min, draw.Over)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), rightImg, rb.Min, draw.Over)

	buffer := bytes.NewBuffer([]byte{})
	if err := png.Encode(buffer, canvas); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}
