package image

import (
	"cmp"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/autotheme/internal/colour"
)

const (
	// DefaultClusters is the number of colours Primary clusters an image into.
	DefaultClusters = 6

	maxSamples    = 4000
	maxIterations = 20
	// Mean centroid movement in Lab units below which clustering stops.
	convergence = 0.5
	// HSL chroma below which a cluster counts as grey.
	minChroma = 0.15
	// Pixels more transparent than this are ignored.
	minAlpha = 0x8000
)

// Cluster is one dominant colour and the share of sampled pixels it covers.
type Cluster struct {
	Colour colour.Colour
	Weight float64
}

// Extract clusters the opaque pixels of img into at most k colours, heaviest
// first. Clustering happens in CIE Lab and is seeded from the pixel data, so
// the same image always yields the same clusters.
func Extract(img image.Image, k int) ([]Cluster, error) {
	if img == nil {
		return nil, errors.New("image cannot be nil")
	}
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return nil, errors.New("no opaque pixels found in image")
	}

	counts := make(map[colorful.Color]int)
	for _, p := range pixels {
		counts[p]++
	}

	var clusters []Cluster
	if len(counts) <= k {
		for c, n := range counts {
			clusters = append(clusters, Cluster{
				Colour: colour.FromColorful(c),
				Weight: float64(n) / float64(len(pixels)),
			})
		}
	} else {
		rng := rand.New(rand.NewPCG(contentSeed(img), uint64(len(pixels))))
		clusters = kmeans(pixels, k, rng)
	}

	slices.SortFunc(clusters, func(a, b Cluster) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		// Tie-break on hex so map iteration order never leaks out.
		return cmp.Compare(a.Colour.Hex(), b.Colour.Hex())
	})
	return clusters, nil
}

// Primary returns the colour to seed a theme from img: the heaviest cluster
// with visible chroma, weighted towards vivid clusters. An image with no
// chromatic clusters yields its heaviest cluster.
func Primary(img image.Image) (colour.Colour, error) {
	clusters, err := Extract(img, DefaultClusters)
	if err != nil {
		return colour.Colour{}, err
	}

	best, bestScore := -1, 0.0
	for i, c := range clusters {
		chroma := hslChroma(c.Colour)
		if chroma < minChroma {
			continue
		}
		if score := c.Weight * (0.5 + chroma); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		best = 0
	}
	return clusters[best].Colour, nil
}

// hslChroma is HSL saturation scaled by distance from black and white, in
// 0-1.
func hslChroma(c colour.Colour) float64 {
	hsl := c.HSL()
	return hsl.S / 100 * (1 - math.Abs(2*hsl.L/100-1))
}

// samplePixels returns up to maxSamples opaque pixels on an even grid.
func samplePixels(img image.Image) []colorful.Color {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	step := 1
	if total > maxSamples {
		step = max(int(math.Ceil(math.Sqrt(float64(total)/float64(maxSamples)))), 1)
	}

	pixels := make([]colorful.Color, 0, min(total, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a < minAlpha {
				continue
			}
			// Un-premultiply and quantise to 8 bits so equal pixels compare equal.
			pixels = append(pixels, colorful.Color{
				R: float64(r*0xffff/a>>8) / 255,
				G: float64(g*0xffff/a>>8) / 255,
				B: float64(b*0xffff/a>>8) / 255,
			})
		}
	}
	return pixels
}

type lab struct{ L, A, B float64 }

func (p lab) dist2(o lab) float64 {
	dl, da, db := p.L-o.L, p.A-o.A, p.B-o.B
	return dl*dl + da*da + db*db
}

func kmeans(pixels []colorful.Color, k int, rng *rand.Rand) []Cluster {
	points := make([]lab, len(pixels))
	for i, p := range pixels {
		l, a, b := p.Lab()
		points[i] = lab{l, a, b}
	}

	centroids := seedCentroids(points, k, rng)
	assignments := make([]int, len(points))

	for range maxIterations {
		for i, p := range points {
			assignments[i] = nearest(p, centroids)
		}

		sums := make([]lab, len(centroids))
		sizes := make([]int, len(centroids))
		for i, p := range points {
			c := assignments[i]
			sums[c].L += p.L
			sums[c].A += p.A
			sums[c].B += p.B
			sizes[c]++
		}

		moved := 0.0
		for c := range centroids {
			if sizes[c] == 0 {
				continue
			}
			n := float64(sizes[c])
			next := lab{sums[c].L / n, sums[c].A / n, sums[c].B / n}
			moved += math.Sqrt(centroids[c].dist2(next))
			centroids[c] = next
		}
		if moved/float64(len(centroids)) < convergence {
			break
		}
	}

	sizes := make([]int, len(centroids))
	for i, p := range points {
		sizes[nearest(p, centroids)]++
	}

	clusters := make([]Cluster, 0, len(centroids))
	for c, centroid := range centroids {
		if sizes[c] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{
			Colour: colour.FromColorful(colorful.Lab(centroid.L, centroid.A, centroid.B).Clamped()),
			Weight: float64(sizes[c]) / float64(len(points)),
		})
	}
	return clusters
}

// seedCentroids picks k starting centroids with k-means++.
func seedCentroids(points []lab, k int, rng *rand.Rand) []lab {
	centroids := []lab{points[rng.IntN(len(points))]}
	dists := make([]float64, len(points))

	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			dists[i] = p.dist2(centroids[nearest(p, centroids)])
			total += dists[i]
		}
		if total == 0 {
			break
		}

		target := rng.Float64() * total
		pick := len(points) - 1
		for i, d := range dists {
			target -= d
			if target <= 0 {
				pick = i
				break
			}
		}
		centroids = append(centroids, points[pick])
	}
	return centroids
}

func nearest(p lab, centroids []lab) int {
	best, bestDist := 0, math.MaxFloat64
	for i, c := range centroids {
		if d := p.dist2(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// contentSeed hashes the image dimensions and a pixel grid.
func contentSeed(img image.Image) uint64 {
	bounds := img.Bounds()
	hasher := sha256.New()

	dims := make([]byte, 8)
	binary.LittleEndian.PutUint32(dims[0:4], uint32(bounds.Dx()))
	binary.LittleEndian.PutUint32(dims[4:8], uint32(bounds.Dy()))
	hasher.Write(dims)

	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	px := make([]byte, 4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			px[0], px[1], px[2], px[3] = byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8)
			hasher.Write(px)
		}
	}

	return binary.LittleEndian.Uint64(hasher.Sum(nil)[:8])
}
