package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PrivateRoom is the room type highlighted with its own colour.
const PrivateRoom = "Private room"

var (
	privateRoomColor = drawing.ColorFromHex("d62728")
	otherRoomColor   = drawing.ColorFromHex("1f77b4")
)

type dataScatterForGraph struct {
	xValues   []float64
	yValues   []float64
	roomTypes []string
	nameXAxis string
	nameYAxis string
	nameGraph string
}

// NewDataScatterForGraph pairs x/y values with the room type of each point.
func NewDataScatterForGraph(x, y []float64, roomTypes []string, nameXAxis, nameYAxis, nameGraph string) dataScatterForGraph {
	return dataScatterForGraph{
		xValues:   x,
		yValues:   y,
		roomTypes: roomTypes,
		nameXAxis: nameXAxis,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataScatterForGraph) GetNameGraph() string {
	return d.nameGraph
}

func (d dataScatterForGraph) lenValues() int {
	n := len(d.xValues)
	if len(d.yValues) < n {
		n = len(d.yValues)
	}
	if len(d.roomTypes) < n {
		n = len(d.roomTypes)
	}
	return n
}

// split separates private rooms from every other room type.
func (d dataScatterForGraph) split() (privX, privY, otherX, otherY []float64) {
	for i := 0; i < d.lenValues(); i++ {
		if d.roomTypes[i] == PrivateRoom {
			privX = append(privX, d.xValues[i])
			privY = append(privY, d.yValues[i])
		} else {
			otherX = append(otherX, d.xValues[i])
			otherY = append(otherY, d.yValues[i])
		}
	}
	return
}

func (d dataScatterForGraph) generateSeries() []chart.Series {
	privX, privY, otherX, otherY := d.split()

	var series []chart.Series
	if len(privX) > 0 {
		series = append(series, dotSeries(PrivateRoom, privX, privY, privateRoomColor))
	}
	if len(otherX) > 0 {
		series = append(series, dotSeries("Other room types", otherX, otherY, otherRoomColor))
	}
	return series
}

func dotSeries(name string, x, y []float64, color drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			StrokeColor: color,
			DotWidth:    4,
			DotColor:    color.WithAlpha(180),
		},
		XValues: x,
		YValues: y,
	}
}

func (d dataScatterForGraph) generateXAxis() chart.XAxis {
	top, ticks := generateTicks(findMaxValue(d.xValues))
	return chart.XAxis{
		Name:  d.nameXAxis,
		Range: &chart.ContinuousRange{Min: 0, Max: top},
		Ticks: ticks,
	}
}

func (d dataScatterForGraph) generateYAxis() chart.YAxis {
	top, ticks := generateTicks(findMaxValue(d.yValues))
	return chart.YAxis{
		Name:  d.nameYAxis,
		Range: &chart.ContinuousRange{Min: 0, Max: top},
		Ticks: ticks,
		GridMajorStyle: chart.Style{
			StrokeColor:     drawing.ColorFromHex("cccccc"),
			StrokeWidth:     1,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}
