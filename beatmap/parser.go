package beatmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Mamestagram/mamestagram-pp/beatmap/objects"
	"github.com/Mamestagram/mamestagram-pp/framework/math/mutils"
	"github.com/Mamestagram/mamestagram-pp/framework/math/vector"
)

const latestFormatVersion = 14

// ParseFile reads a .osu file from disk.
func ParseFile(path string) (*Beatmap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	beatMap, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return beatMap, nil
}

// Parse reads a chart in the .osu text format. Only the sections the
// difficulty pipeline needs are interpreted; malformed entries are skipped
// rather than treated as fatal.
func Parse(reader io.Reader) (*Beatmap, error) {
	beatMap := &Beatmap{
		FormatVersion:    latestFormatVersion,
		StackLeniency:    0.7,
		SliderMultiplier: 1.4,
		SliderTickRate:   1,
		ApproachRate:     -1,
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 2*1024*1024)

	section := ""

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if idx := strings.Index(line, "osu file format v"); section == "" && idx >= 0 {
			if version, err := strconv.Atoi(strings.TrimSpace(line[idx+len("osu file format v"):])); err == nil {
				beatMap.FormatVersion = version
			}

			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}

		switch section {
		case "General", "Metadata", "Difficulty":
			key, value, found := strings.Cut(line, ":")
			if !found {
				continue
			}

			beatMap.setProperty(strings.TrimSpace(key), strings.TrimSpace(value))
		case "TimingPoints":
			beatMap.parseTimingPoint(line)
		case "HitObjects":
			beatMap.parseHitObject(line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if beatMap.ApproachRate < 0 {
		// Old charts carry no AR and reuse OD.
		beatMap.ApproachRate = beatMap.OverallDifficulty
	}

	return beatMap, nil
}

func (beatMap *Beatmap) setProperty(key, value string) {
	switch key {
	case "Title":
		beatMap.Title = value
	case "Version":
		beatMap.Version = value
	case "Mode":
		beatMap.Mode, _ = strconv.Atoi(value)
	case "StackLeniency":
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			beatMap.StackLeniency = parsed
		}
	case "HPDrainRate":
		beatMap.HPDrainRate = parseFloatOr(value, beatMap.HPDrainRate)
	case "CircleSize":
		beatMap.CircleSize = parseFloatOr(value, beatMap.CircleSize)
	case "OverallDifficulty":
		beatMap.OverallDifficulty = parseFloatOr(value, beatMap.OverallDifficulty)
	case "ApproachRate":
		beatMap.ApproachRate = parseFloatOr(value, beatMap.ApproachRate)
	case "SliderMultiplier":
		beatMap.SliderMultiplier = parseFloatOr(value, beatMap.SliderMultiplier)
	case "SliderTickRate":
		beatMap.SliderTickRate = parseFloatOr(value, beatMap.SliderTickRate)
	}
}

func (beatMap *Beatmap) parseTimingPoint(line string) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return
	}

	time, err1 := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	beatLength, err2 := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)

	if err1 != nil || err2 != nil {
		return
	}

	point := TimingPoint{
		Time:        time,
		Uninherited: true,
		SpeedMult:   1,
	}

	if len(fields) > 6 {
		point.Uninherited = strings.TrimSpace(fields[6]) != "0"
	} else {
		point.Uninherited = beatLength >= 0
	}

	if point.Uninherited {
		point.BeatLength = beatLength
	} else if beatLength < 0 {
		point.SpeedMult = mutils.Clamp(-100/beatLength, 0.1, 10)
	}

	beatMap.TimingPoints = append(beatMap.TimingPoints, point)
}

func (beatMap *Beatmap) parseHitObject(line string) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return
	}

	x, errX := strconv.ParseFloat(fields[0], 32)
	y, errY := strconv.ParseFloat(fields[1], 32)
	time, errT := strconv.ParseFloat(fields[2], 64)
	kind, errK := strconv.Atoi(fields[3])

	if errX != nil || errY != nil || errT != nil || errK != nil {
		return
	}

	hitObject := objects.HitObject{
		StartTime: time,
		EndTime:   time,
		Pos:       vector.NewVec2f(float32(x), float32(y)),
	}

	const (
		typeCircle  = 1
		typeSlider  = 2
		typeSpinner = 8
	)

	switch {
	case kind&typeCircle > 0:
		hitObject.Kind = objects.Circle
	case kind&typeSlider > 0 && len(fields) >= 8:
		hitObject.Kind = objects.Slider

		path, ok := parseSliderPath(hitObject.Pos, fields[5])
		if !ok {
			return
		}

		slides, err := strconv.Atoi(fields[6])
		if err != nil || slides < 1 {
			return
		}

		length, err := strconv.ParseFloat(fields[7], 64)
		if err != nil || length < 0 {
			return
		}

		path.PixelLength = length
		hitObject.Path = path
		hitObject.Slides = slides
	case kind&typeSpinner > 0 && len(fields) >= 6:
		hitObject.Kind = objects.Spinner

		endTime, err := strconv.ParseFloat(fields[5], 64)
		if err != nil {
			return
		}

		hitObject.EndTime = max(endTime, time)
	default:
		return
	}

	beatMap.HitObjects = append(beatMap.HitObjects, hitObject)
}

func parseSliderPath(head vector.Vector2f, raw string) (objects.SliderPath, bool) {
	parts := strings.Split(raw, "|")
	if len(parts) < 1 {
		return objects.SliderPath{}, false
	}

	path := objects.SliderPath{
		ControlPoints: []vector.Vector2f{head},
	}

	switch parts[0] {
	case "L":
		path.Type = objects.Linear
	case "C":
		path.Type = objects.Catmull
	case "P":
		path.Type = objects.Perfect
	default:
		path.Type = objects.Bezier
	}

	for _, part := range parts[1:] {
		xRaw, yRaw, found := strings.Cut(part, ":")
		if !found {
			continue
		}

		x, errX := strconv.ParseFloat(xRaw, 32)
		y, errY := strconv.ParseFloat(yRaw, 32)

		if errX != nil || errY != nil {
			continue
		}

		path.ControlPoints = append(path.ControlPoints, vector.NewVec2f(float32(x), float32(y)))
	}

	if len(path.ControlPoints) < 2 {
		return objects.SliderPath{}, false
	}

	// Perfect arcs need exactly 3 points, anything else degrades to Bézier.
	if path.Type == objects.Perfect && len(path.ControlPoints) != 3 {
		path.Type = objects.Bezier
	}

	return path, true
}

func parseFloatOr(value string, fallback float64) float64 {
	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		return parsed
	}

	return fallback
}
