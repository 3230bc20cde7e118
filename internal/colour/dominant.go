package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Dominant colour extraction seeds a scale family from an image. Pixels are
// clustered with k-means in OKLab space, where Euclidean distance tracks
// perceived colour difference, and the heaviest sufficiently chromatic
// cluster wins.

const (
	dominantMaxSamples    = 2000
	dominantMaxIterations = 20
	dominantConvergence   = 0.002

	// minSeedChroma separates "actual colours" from near-greys when picking
	// the winning cluster.
	minSeedChroma = 0.03
)

// labPoint is a point in OKLab space.
type labPoint struct {
	L, A, B float64
}

func (p labPoint) distance(other labPoint) float64 {
	dl := p.L - other.L
	da := p.A - other.A
	db := p.B - other.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

func (p labPoint) oklch() OKLCH {
	chroma := math.Sqrt(p.A*p.A + p.B*p.B)
	if chroma < achromaticChroma {
		return OKLCH{L: p.L, C: chroma, H: 0}
	}
	hue := math.Atan2(p.B, p.A) * (180.0 / math.Pi)
	if hue < 0 {
		hue += 360
	}
	return OKLCH{L: p.L, C: chroma, H: hue}
}

// DominantOklch extracts the dominant colour of an image as an OKLCH value.
// k is the number of clusters to partition the image into; the cluster with
// the largest share of pixels among those with chroma above minSeedChroma
// is returned, falling back to the largest cluster outright for
// near-monochrome images.
func DominantOklch(img image.Image, k int) (OKLCH, error) {
	if img == nil {
		return OKLCH{}, fmt.Errorf("image cannot be nil")
	}
	if k < 1 {
		return OKLCH{}, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}

	points := sampleLabPoints(img)
	if len(points) == 0 {
		return OKLCH{}, fmt.Errorf("no pixels found in image")
	}
	if k > len(points) {
		k = len(points)
	}

	centroids, weights := kmeansLab(points, k)

	bestIdx := -1
	bestWeight := 0.0
	for i, c := range centroids {
		if c.oklch().C < minSeedChroma {
			continue
		}
		if weights[i] > bestWeight {
			bestWeight = weights[i]
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		// Monochrome image: take the heaviest cluster regardless of chroma.
		for i := range centroids {
			if weights[i] > bestWeight {
				bestWeight = weights[i]
				bestIdx = i
			}
		}
	}

	return centroids[bestIdx].oklch(), nil
}

// sampleLabPoints grid-samples up to dominantMaxSamples pixels and converts
// them to OKLab. Fully transparent pixels are skipped.
func sampleLabPoints(img image.Image) []labPoint {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > dominantMaxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(dominantMaxSamples))), 1)
	}

	points := make([]labPoint, 0, dominantMaxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, a, b := linearToOklab(c.LinearRgb())
			points = append(points, labPoint{L: l, A: a, B: b})
			if len(points) >= dominantMaxSamples {
				return points
			}
		}
	}
	return points
}

// kmeansLab clusters points into k groups and returns the centroids with
// their normalised weights.
func kmeansLab(points []labPoint, k int) ([]labPoint, []float64) {
	centroids := initialCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < dominantMaxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recomputeCentroids(points, assignments, k)

		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < dominantConvergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// initialCentroids seeds centroids k-means++ style: the first pick is
// random, later picks favour points far from existing centroids.
func initialCentroids(points []labPoint, k int) []labPoint {
	centroids := make([]labPoint, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// All remaining points coincide with existing centroids.
			centroids = append(centroids, centroids[len(centroids)-1])
			continue
		}

		target := rand.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func nearestCentroid(p labPoint, centroids []labPoint) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recomputeCentroids(points []labPoint, assignments []int, k int) []labPoint {
	sums := make([]labPoint, k)
	counts := make([]int, k)
	for i, p := range points {
		cluster := assignments[i]
		sums[cluster].L += p.L
		sums[cluster].A += p.A
		sums[cluster].B += p.B
		counts[cluster]++
	}

	centroids := make([]labPoint, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = labPoint{
				L: sums[i].L / float64(counts[i]),
				A: sums[i].A / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			// Empty cluster: reseed from a random point.
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}
