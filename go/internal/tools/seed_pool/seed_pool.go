package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writes a small sample player pool so the tool can be run before a real
// projection export is dropped in.

const hittersCSV = `name,team,positions,ab,avg,r,hr,rbi,sb,obp,slg
Aaron Judge,NYY,RF,559,0.322,122,58,144,10,0.458,0.701
Bobby Witt Jr.,KC,SS,636,0.332,125,32,109,31,0.389,0.588
Shohei Ohtani,LAD,DH,636,0.310,134,54,130,59,0.390,0.646
Jose Altuve,HOU,2B,628,0.295,105,20,65,22,0.350,0.439
Cal Raleigh,SEA,C,546,0.220,78,34,100,6,0.312,0.436
Gunnar Henderson,BAL,SS,630,0.281,118,37,92,21,0.364,0.529
Elly De La Cruz,CIN,SS,618,0.259,105,25,76,67,0.339,0.471
Jackson Merrill,SD,CF,554,0.292,75,24,90,16,0.326,0.500
Rafael Devers,BOS,3B,572,0.272,87,28,83,4,0.354,0.516
Freddie Freeman,LAD,1B,545,0.282,81,22,89,9,0.378,0.476
Marcus Semien,TEX,2B,647,0.237,101,23,74,8,0.308,0.391
William Contreras,MIL,C,602,0.281,99,23,92,9,0.365,0.466
`

const pitchersCSV = `name,team,positions,ip,k,w,sv,era,whip
Tarik Skubal,DET,SP,192,228,18,0,2.39,0.92
Zack Wheeler,PHI,SP,200,224,16,0,2.57,0.96
Emmanuel Clase,CLE,RP,74.1,66,5,47,0.61,0.66
Chris Sale,ATL,SP,177.2,225,18,0,2.38,1.01
Paul Skenes,PIT,SP,133,170,11,0,1.96,0.95
Cole Ragans,KC,SP,186.1,223,11,0,3.14,1.14
Ryan Helsley,STL,RP,66.1,79,7,49,2.04,1.10
Logan Gilbert,SEA,SP,208.2,220,9,0,3.23,0.89
Corbin Burnes,BAL,SP,194.1,181,15,0,2.92,1.10
Devin Williams,NYY,RP,60,82,3,36,3.10,1.20
`

func main() {
	dir := "data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", dir, err)
		os.Exit(1)
	}

	hittersPath := filepath.Join(dir, "hitters.csv")
	if err := os.WriteFile(hittersPath, []byte(hittersCSV), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", hittersPath, err)
		os.Exit(1)
	}

	pitchersPath := filepath.Join(dir, "pitchers.csv")
	if err := os.WriteFile(pitchersPath, []byte(pitchersCSV), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", pitchersPath, err)
		os.Exit(1)
	}

	fmt.Printf("Seeded sample pool: %s, %s\n", hittersPath, pitchersPath)
}
