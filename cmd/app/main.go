package main

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/0x0FACED/go-delaunay/static"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Генерируем случайные точки
func generateRandPoints(rnd *rand.Rand, n int, width, height int) []geom.Point {
	points := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		points[i] = geom.Point{
			X: float64(rnd.Intn(width)),
			Y: float64(rnd.Intn(height)),
		}
	}
	return points
}

// Точки по сетке, по центру каждой клетки
func generateGridPoints(n int, width, height int) []geom.Point {
	if n <= 0 {
		return nil
	}
	points := make([]geom.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows && len(points) < n; i++ {
		for j := 0; j < cols && len(points) < n; j++ {
			points = append(points, geom.Point{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}

	return points
}

func prepareScatter(scatter *charts.Scatter, width, height int) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "640px",
			Width:  "900px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Делоне / Вороной",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			Min:  0,
			Max:  width,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			Min:  0,
			Max:  height,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Ломаная как отдельная линия поверх скаттера
func polyline(name, color string, points []geom.Point) *charts.Line {
	line := charts.NewLine()
	data := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
	}
	line.AddSeries(name, data).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 1,
			Color: color,
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: color,
		}),
	)
	return line
}

type layers struct {
	delaunay bool
	voronoi  bool
}

// Преобразуем триангуляцию и ячейки в Echarts для отображения
func diagramToEcharts(d *delaunay.Delaunay, v *voronoi.Voronoi, show layers, width, height int) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, width, height)

	points := make([]opts.ScatterData, 0, len(d.Points))
	for _, p := range d.Points {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries("Точки", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	if show.voronoi {
		for _, cell := range v.CellPolygons() {
			scatter.Overlap(polyline("Вороной", "orange", cell))
		}
	}

	if show.delaunay {
		for _, triangle := range d.TrianglePolygons() {
			if len(triangle) < 2 {
				continue
			}
			scatter.Overlap(polyline("Делоне", "steelblue", triangle))
		}
	}

	return scatter
}

type server struct {
	seed int64
}

// http обработчик страницы с диаграммой и формой для ввода данных
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	width := 1000
	height := 1000
	numPoints := 24
	isRandom := true
	show := layers{delaunay: true, voronoi: true}

	log := logger.New()
	defer log.ClearLogs()

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			log.Error("[app] bad form", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		width = formInt(r, "width", width)
		height = formInt(r, "height", height)
		numPoints = formInt(r, "points", numPoints)
		isRandom = r.FormValue("random") == "true"
		show.delaunay = r.FormValue("delaunay") == "true"
		show.voronoi = r.FormValue("voronoi") == "true"
	}
	width, height = max(width, 1), max(height, 1)

	var points []geom.Point
	if isRandom {
		seed := s.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		points = generateRandPoints(rand.New(rand.NewSource(seed)), numPoints, width, height)
		log.Info("[app] random points", zap.Int64("seed", seed), zap.Int("n", numPoints))
	} else {
		points = generateGridPoints(numPoints, width, height)
		log.Info("[app] grid points", zap.Int("n", len(points)))
	}

	d := delaunay.New(points, delaunay.WithLogger(log.Zap()))

	bbox := voronoi.NewBoundingBox(0, float64(width), 0, float64(height))
	v, err := voronoi.New(d, voronoi.WithBounds(bbox), voronoi.WithLogger(log.Zap()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Info("[app] diagram ready",
		zap.Int("triangles", len(d.Triangles)/3),
		zap.Int("hull", len(d.Hull)),
	)

	scatter := diagramToEcharts(d, v, show, width, height)

	fmt.Fprintln(w, static.Head)

	if err := scatter.Render(w); err != nil {
		log.Error("[app] chart render failed", zap.Error(err))
		fmt.Fprintf(w, `<p class="error">%s</p>`, err)
	}

	fmt.Fprintln(w, static.Middle)

	// Вставляем логи в HTML
	fmt.Fprintln(w, log.HTML())

	fmt.Fprintln(w, static.Tail)
}

func formInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func main() {
	app := kingpin.New("app", "Delaunay/Voronoi demo server.")
	addr := app.Flag("addr", "Listen address.").Default(":8080").String()
	seed := app.Flag("seed", "Seed for random points, 0 for time based.").Default("0").Int64()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	s := &server{seed: *seed}
	http.HandleFunc("/", s.diagramHandler)

	fmt.Println("Сервер запущен на", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		fmt.Println("Err ListenAndServe", err)
		os.Exit(1)
	}
}
