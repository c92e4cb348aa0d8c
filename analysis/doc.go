// SPDX-License-Identifier: MIT

// Package analysis scores SymNMF clusterings against k-means.
//
// Both methods label the same points, and each labelling is scored with the
// mean silhouette coefficient (Euclidean distance). Higher is better; the
// range is [-1, 1].
//
// The k-means side uses github.com/muesli/kmeans, whose centroid seeding is
// random, so KMeans scores may vary between runs. The SymNMF side is
// deterministic for a fixed seed.
package analysis
