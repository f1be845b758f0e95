package topic

// diskSeek is the access-latency micro-lesson.
func diskSeek() Topic {
	return Topic{
		ID:          "disk-seek",
		Title:       "Why Spinning Disks Are Slow",
		Tagline:     "Seek time, rotational latency and the price of randomness",
		Kind:        KindSeek,
		PhaseLabels: standardLabels(),

		Hook: "A hard drive reads data with a mechanical arm hovering over a platter " +
			"spinning thousands of times a minute. Before a single byte arrives, the arm " +
			"must swing to the right track, then wait for the sector to rotate underneath. " +
			"Those two delays, not the electronics, decide how fast your database feels.",

		Predict: Prediction{
			Prompt: "A 7200 RPM drive doubles its spindle speed to 14400 RPM. What happens to the average rotational wait?",
			Options: []Option{
				{ID: "a", Label: "It stays the same, speed only helps throughput"},
				{ID: "b", Label: "It halves, the sector comes around twice as fast"},
				{ID: "c", Label: "It quarters, latency falls with the square of speed"},
				{ID: "d", Label: "It doubles, the head has less time to settle"},
			},
			CorrectID: "b",
		},

		PlayHint: "Drag the spindle speed and watch access time. Flip the workload to sequential and see which delay vanishes.",

		Review: "Average rotational latency is half a revolution: (60/RPM)×1000/2 milliseconds. " +
			"At 7200 RPM that is about 4.17 ms; doubling the speed halves it. Seek time shrinks " +
			"too on faster drives, but only because their actuators are built faster, not because " +
			"of the spin.",

		TwistPredict: Prediction{
			Prompt: "Keep the same drive but make the workload purely sequential. What dominates the access time now?",
			Options: []Option{
				{ID: "a", Label: "Seek time, the arm still moves for every request"},
				{ID: "b", Label: "Rotational latency, the platter still has to come around"},
				{ID: "c", Label: "Neither, sequential reads stream at media speed"},
				{ID: "d", Label: "The bus, SATA becomes the bottleneck"},
			},
			CorrectID: "b",
		},

		TwistPlayHint: "Switch sequential mode on and off at the same RPM. Compare how much each delay contributes.",

		TwistReview: "Sequential access collapses seek time to a track-to-track hop of well under a " +
			"millisecond, so the rotational delay becomes the floor. That is why databases, log " +
			"files and video recorders fight so hard to lay data out sequentially, and why random " +
			"4K IOPS is the number that separates disks from SSDs.",

		Applications: []Application{
			{
				Title:       "Database page layout",
				Description: "Relational engines cluster rows into sequential pages and batch writes in a log precisely to avoid paying one seek per row.",
				Stats: []Stat{
					{Label: "Random 4K reads", Value: "~150 IOPS"},
					{Label: "Sequential scan", Value: "200+ MB/s"},
				},
			},
			{
				Title:       "Video surveillance recorders",
				Description: "A DVR writing sixteen camera streams interleaves them into large sequential chunks so one spinning disk can keep up.",
				Stats: []Stat{
					{Label: "Streams per disk", Value: "16"},
					{Label: "Seek budget", Value: "near zero"},
				},
			},
			{
				Title:       "Elevator scheduling",
				Description: "Operating systems reorder pending disk requests by track position, sweeping the arm in one direction like an elevator to cut total seek distance.",
				Stats: []Stat{
					{Label: "Algorithm", Value: "SCAN / C-SCAN"},
					{Label: "Seek savings", Value: "up to 50%"},
				},
			},
			{
				Title:       "Archive cold storage",
				Description: "Backup tiers still buy 5400 RPM drives: once access is sequential and rare, capacity per dollar beats latency every time.",
				Stats: []Stat{
					{Label: "Cost per TB", Value: "lowest"},
					{Label: "Access pattern", Value: "sequential"},
				},
			},
		},

		Questions: []Question{
			{
				ID:       "q1",
				Scenario: "A drive spins at 7200 RPM.",
				Prompt:   "What is its average rotational latency?",
				Options: []Option{
					{ID: "a", Label: "8.33 ms"},
					{ID: "b", Label: "4.17 ms", Correct: true},
					{ID: "c", Label: "2.08 ms"},
					{ID: "d", Label: "7.2 ms"},
				},
				Explanation: "One revolution takes 60/7200 = 8.33 ms; on average the sector is half a turn away, so 4.17 ms.",
			},
			{
				ID:       "q2",
				Scenario: "Two delays add up before any data moves.",
				Prompt:   "Total random access time is the sum of which two components?",
				Options: []Option{
					{ID: "a", Label: "Seek time and rotational latency", Correct: true},
					{ID: "b", Label: "Transfer rate and cache latency"},
					{ID: "c", Label: "Spin-up time and settle time"},
					{ID: "d", Label: "Queue depth and block size"},
				},
				Explanation: "The arm must reach the track (seek) and the sector must rotate under the head (rotational latency).",
			},
			{
				ID:       "q3",
				Scenario: "A workload issues one random read at a time.",
				Prompt:   "With a total access time of 10 ms, roughly how many random IOPS can the drive deliver?",
				Options: []Option{
					{ID: "a", Label: "10"},
					{ID: "b", Label: "100", Correct: true},
					{ID: "c", Label: "1000"},
					{ID: "d", Label: "10000"},
				},
				Explanation: "IOPS is the reciprocal of access time: 1000 ms / 10 ms = 100 operations per second.",
			},
			{
				ID:       "q4",
				Scenario: "A 15000 RPM enterprise drive replaces a 5400 RPM desktop drive.",
				Prompt:   "Why does its seek time also improve?",
				Options: []Option{
					{ID: "a", Label: "Higher spin speed drags the arm along"},
					{ID: "b", Label: "Faster drives ship with faster, shorter-throw actuators", Correct: true},
					{ID: "c", Label: "Seek time is a fixed fraction of rotational latency"},
					{ID: "d", Label: "It does not, seek time is identical"},
				},
				Explanation: "Seek and rotation are mechanically independent; premium drives pair fast spindles with faster actuators and smaller platters.",
			},
			{
				ID:       "q5",
				Scenario: "A log-structured file system turns random writes into appends.",
				Prompt:   "Which delay does that mostly eliminate?",
				Options: []Option{
					{ID: "a", Label: "Rotational latency"},
					{ID: "b", Label: "Seek time", Correct: true},
					{ID: "c", Label: "Transfer time"},
					{ID: "d", Label: "Controller overhead"},
				},
				Explanation: "Appending keeps the head on or next to the current track, reducing seeks to track-to-track hops.",
			},
			{
				ID:       "q6",
				Scenario: "You double RPM from 7200 to 14400 and leave everything else unchanged.",
				Prompt:   "Rotational latency changes by what factor?",
				Options: []Option{
					{ID: "a", Label: "Unchanged"},
					{ID: "b", Label: "Halved", Correct: true},
					{ID: "c", Label: "Quartered"},
					{ID: "d", Label: "Doubled"},
				},
				Explanation: "Latency is inversely proportional to spin speed: half a revolution takes half as long at twice the RPM.",
			},
			{
				ID:       "q7",
				Scenario: "An OS scheduler sweeps the arm across the platter servicing requests in track order.",
				Prompt:   "What is this strategy minimizing?",
				Options: []Option{
					{ID: "a", Label: "Total seek distance", Correct: true},
					{ID: "b", Label: "Rotational latency"},
					{ID: "c", Label: "Power draw"},
					{ID: "d", Label: "Cache misses"},
				},
				Explanation: "Elevator scheduling orders requests by track so the arm travels each span once instead of zigzagging.",
			},
			{
				ID:       "q8",
				Scenario: "A benchmark reports 180 random IOPS for a disk and 90000 for an SSD.",
				Prompt:   "What explains the 500x gap?",
				Options: []Option{
					{ID: "a", Label: "The SSD has a faster SATA link"},
					{ID: "b", Label: "The SSD pays no mechanical seek or rotation", Correct: true},
					{ID: "c", Label: "The disk firmware is unoptimized"},
					{ID: "d", Label: "The SSD compresses data"},
				},
				Explanation: "Flash addresses any page electronically; the disk's milliseconds of arm and platter motion cap it near a few hundred IOPS.",
			},
			{
				ID:       "q9",
				Scenario: "A drive claims 0.5 ms track-to-track seek and 8.5 ms average seek.",
				Prompt:   "Which workload benefits most from that 0.5 ms figure?",
				Options: []Option{
					{ID: "a", Label: "Random database lookups"},
					{ID: "b", Label: "Sequential media streaming", Correct: true},
					{ID: "c", Label: "Swap file thrashing"},
					{ID: "d", Label: "Boot-time library loading"},
				},
				Explanation: "Sequential access only ever hops to the adjacent track, so it pays the track-to-track figure, not the average.",
			},
			{
				ID:       "q10",
				Scenario: "Access time is 4 ms of seek plus 4.17 ms of rotation.",
				Prompt:   "Halving seek time alone improves total access time by roughly what share?",
				Options: []Option{
					{ID: "a", Label: "About a quarter", Correct: true},
					{ID: "b", Label: "About a half"},
					{ID: "c", Label: "It doubles IOPS"},
					{ID: "d", Label: "No change"},
				},
				Explanation: "2 ms saved out of 8.17 ms total is about 24%; both components must shrink to transform latency.",
			},
		},

		PassThreshold: 7,
	}
}
