package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/Mamestagram/mamestagram-pp/api"
	"github.com/Mamestagram/mamestagram-pp/beatmap"
	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/performance"
)

var (
	chart   = kingpin.Arg("chart", "Path to a .osu file or a numeric beatmap ID").Required().String()
	mods    = kingpin.Flag("mods", "Mod acronyms, e.g. HDDT").Short('m').Default("NM").String()
	acc     = kingpin.Flag("acc", "Accuracy of the play in percent").Short('a').Default("-1").Float64()
	combo   = kingpin.Flag("combo", "Highest combo of the play").Short('c').Default("-1").Int()
	misses  = kingpin.Flag("misses", "Miss count of the play").Short('x').Default("0").Int()
	passed  = kingpin.Flag("passed", "Amount of passed objects for partial plays").Short('p').Default("-1").Int()
	strains = kingpin.Flag("strains", "Dump per-section strain peaks instead of a score").Bool()
	cache   = kingpin.Flag("cache", "Path to the chart cache database").Default(defaultCachePath()).String()
)

func main() {
	kingpin.Parse()

	beatMap, err := loadChart(*chart, *cache)
	if err != nil {
		log.Fatalln("unable to load chart:", err)
	}

	modifiers := difficulty.ParseMods(*mods)

	diff := difficulty.NewDifficulty(
		beatMap.HPDrainRate, beatMap.CircleSize,
		beatMap.OverallDifficulty, beatMap.ApproachRate,
		modifiers,
	)

	if *strains {
		printStrains(performance.CalculateStrainPeaks(beatMap, diff))
		return
	}

	var attr = performance.CalculateDifficulty(beatMap, diff)
	if *passed >= 0 {
		attr = performance.CalculateDifficultyPassed(beatMap, diff, *passed)
	}

	score := performance.NewScore()
	score.Mods = modifiers
	score.MaxCombo = *combo
	score.Misses = *misses

	if *acc >= 0 {
		score.Accuracy = *acc / 100
	}

	result := performance.CalculatePerformance(attr, score)

	printResult(beatMap, modifiers, attr, result)
}

func printResult(beatMap *beatmap.Beatmap, mods difficulty.Modifier, attr api.Attributes, result api.PerformanceAttributes) {
	fmt.Printf("%s [%s] +%s\n\n", beatMap.Title, beatMap.Version, mods)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Stars", "Aim", "Speed", "FL", "Slider Factor", "Max Combo"})
	table.Append([]string{
		fmt.Sprintf("%.2f", attr.Stars),
		fmt.Sprintf("%.2f", attr.Aim),
		fmt.Sprintf("%.2f", attr.Speed),
		fmt.Sprintf("%.2f", attr.Flashlight),
		fmt.Sprintf("%.3f", attr.SliderFactor),
		strconv.Itoa(attr.MaxCombo),
	})
	table.Render()

	fmt.Println()

	table = tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"PP", "Aim PP", "Speed PP", "FL PP", "Accuracy"})
	table.Append([]string{
		fmt.Sprintf("%.2f", result.Total),
		fmt.Sprintf("%.2f", result.Aim),
		fmt.Sprintf("%.2f", result.Speed),
		fmt.Sprintf("%.2f", result.Flashlight),
		fmt.Sprintf("%.2f%%", result.Accuracy*100),
	})
	table.Render()
}

func printStrains(peaks api.StrainPeaks) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Section Start", "Aim", "Speed", "FL", "Total"})

	for i := range peaks.Total {
		table.Append([]string{
			fmt.Sprintf("%.0fms", float64(i)*peaks.SectionLength),
			fmt.Sprintf("%.2f", peaks.Aim[i]),
			fmt.Sprintf("%.2f", peaks.Speed[i]),
			fmt.Sprintf("%.2f", peaks.Flashlight[i]),
			fmt.Sprintf("%.2f", peaks.Total[i]),
		})
	}

	table.Render()
}

// loadChart reads the chart from disk, or by beatmap ID through the cache
// and the website.
func loadChart(arg, cachePath string) (*beatmap.Beatmap, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		data, err := fetchChart(id, cachePath)
		if err != nil {
			return nil, err
		}

		return beatmap.Parse(bytes.NewReader(data))
	}

	return beatmap.ParseFile(arg)
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "charts.db"
	}

	return dir + "/mamestagram-pp/charts.db"
}
