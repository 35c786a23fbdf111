package techniques

// builtin is the fixed technique table, in declaration order.
var builtin = []Technique{
	{
		ID:                 "bfr",
		Name:               "Blood Flow Restriction (BFR)",
		Category:           CategorySarcoplasmic,
		Repetitions:        "15–30",
		Load:               "~20–30%",
		Rest:               "Court",
		Goal:               "Pump extrême, hypertrophie sarcoplasmique",
		LegacyDifficulty:   5,
		DifficultyLevel:    2,
		RecommendedProgram: "Sarco",
		Notes:              "Occlusion/Kaatsu; précautions vasculaires.",
	},
	{
		ID:                 "inter_set_stretch",
		Name:               "Inter-set stretching",
		Category:           CategorySarcoplasmic,
		Repetitions:        "20–60 s stretch entre sets",
		Load:               "Modérée",
		Rest:               "Pendant le stretch",
		Goal:               "Pump + stretch-mediated growth",
		LegacyDifficulty:   4,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Étirements entre séries pour congestion.",
	},
	{
		ID:                 "21s",
		Name:               "21's (7-7-7)",
		Category:           CategorySarcoplasmic,
		Repetitions:        "7 bas + 7 haut + 7 complète",
		Load:               "Légère–modérée",
		Rest:               "Aucun",
		Goal:               "Temps sous tension élevé, pump",
		LegacyDifficulty:   3,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Séries continues, simple et efficace.",
	},
	{
		ID:                 "tempo_lent",
		Name:               "Tempo lent / Superslow",
		Category:           CategorySarcoplasmic,
		Repetitions:        "3–10 s tempo",
		Load:               "Légère–modérée",
		Rest:               "Variable",
		Goal:               "Max TUT et signalisation hypertrophique",
		LegacyDifficulty:   3,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Accent sur la phase excentrique/contrainte temporelle.",
	},
	{
		ID:                 "pre_post_fatigue",
		Name:               "Pré-fatigue / Post-fatigue",
		Category:           CategorySarcoplasmic,
		Repetitions:        "Variation",
		Load:               "Modérée",
		Rest:               "Court",
		Goal:               "Recrutement ciblé",
		LegacyDifficulty:   3,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Pré-fatigue d'un muscle accessoire avant le composé.",
	},
	{
		ID:                 "supersets",
		Name:               "Supersets / Giant sets / Bi-sets",
		Category:           CategorySarcoplasmic,
		Repetitions:        "8–20",
		Load:               "~60–70%",
		Rest:               "Très court",
		Goal:               "Congestion, volume",
		LegacyDifficulty:   4,
		DifficultyLevel:    4,
		RecommendedProgram: "Sarco",
		Notes:              "Augmente densité et pump.",
	},
	{
		ID:                 "trisets",
		Name:               "Trisets / séries combinées",
		Category:           CategorySarcoplasmic,
		Repetitions:        "8–20",
		Load:               "Modérée",
		Rest:               "Très court",
		Goal:               "Congestion intense",
		LegacyDifficulty:   4,
		DifficultyLevel:    4,
		RecommendedProgram: "Sarco",
		Notes:              "Combinaisons de 3 exercices sans repos.",
	},
	{
		ID:                 "gvt_10x10",
		Name:               "German Volume Training (10×10)",
		Category:           CategorySarcoplasmic,
		Repetitions:        "10×10",
		Load:               "60–80%",
		Rest:               "90–120 s",
		Goal:               "Volume massif (stress métabolique)",
		LegacyDifficulty:   3,
		DifficultyLevel:    4,
		RecommendedProgram: "Sarco",
		Notes:              "Volume élevé; planifier récupération.",
	},
	{
		ID:                 "myo_reps_sarco",
		Name:               "Myo-reps (variante sarcoplasmique)",
		Category:           CategorySarcoplasmic,
		Repetitions:        "Activation + mini-sets",
		Load:               "Modérée",
		Rest:               "Très court",
		Goal:               "Volume efficace, pump",
		LegacyDifficulty:   4,
		DifficultyLevel:    4,
		RecommendedProgram: "Sarco",
		Notes:              "Variante orientée congestion.",
	},
	{
		ID:                 "back_off_sets",
		Name:               "Back-off sets",
		Category:           CategorySarcoplasmic,
		Repetitions:        "1–3 séries légères après lourdes",
		Load:               "60–70% après lourd",
		Rest:               "Moyen",
		Goal:               "Volume additionnel sans trop fatiguer SNC",
		LegacyDifficulty:   4,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Ajout de volume après travail lourd.",
	},
	{
		ID:                 "fst7",
		Name:               "FST-7",
		Category:           CategorySarcoplasmic,
		Repetitions:        "7 séries fin de muscle",
		Load:               "60–70%",
		Rest:               "30–45 s",
		Goal:               "Pump extrême + étirement fascia",
		LegacyDifficulty:   3,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Finisher orienté esthétique.",
	},
	{
		ID:                 "drop_sets",
		Name:               "Drop sets / séries dégressives",
		Category:           CategorySarcoplasmic,
		Repetitions:        "8–15 + drops",
		Load:               "Modérée → faible",
		Rest:               "Minimum",
		Goal:               "Max volume, pump",
		LegacyDifficulty:   2,
		DifficultyLevel:    2,
		RecommendedProgram: "Sarco",
		Notes:              "Technique de fin de set.",
	},
	{
		ID:                 "rest_pause_sarco",
		Name:               "Rest-pause (variante sarco)",
		Category:           CategorySarcoplasmic,
		Repetitions:        "8–12 + mini-pauses",
		Load:               "65–80%",
		Rest:               "Très court",
		Goal:               "Volume densifié",
		LegacyDifficulty:   3,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Densification; attention à la fatigue locale.",
	},
	{
		ID:                 "burns_partials",
		Name:               "Burns / partials rapides en fin de set",
		Category:           CategorySarcoplasmic,
		Repetitions:        "10–20 petites reps rapides",
		Load:               "Très légère",
		Rest:               "Aucun",
		Goal:               "Vider le muscle, pump final",
		LegacyDifficulty:   3,
		DifficultyLevel:    2,
		RecommendedProgram: "Sarco",
		Notes:              "Fin de set, très fatigant localement.",
	},
	{
		ID:                 "series_10_12_standard",
		Name:               "Séries 10–12 (standard)",
		Category:           CategorySarcoplasmic,
		Repetitions:        "8–15 (idéal 10–12)",
		Load:               "60–75%",
		Rest:               "60–90 s",
		Goal:               "Volume métabolique, temps sous tension, hypertrophie sarcoplasmique",
		LegacyDifficulty:   3,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Série de base : 3–4 séries de 10–12 répétitions. Cadence contrôlée; compatible avec supersets, drop sets ou finishers.",
	},
	{
		ID:                 "isometrique",
		Name:               "Isométrique (holds, pauses)",
		Category:           CategoryMixed,
		Repetitions:        "Temps sous tension",
		Load:               "Selon capacité",
		Rest:               "Moyen",
		Goal:               "Activation, endurance",
		LegacyDifficulty:   5,
		DifficultyLevel:    3,
		RecommendedProgram: "Mixte",
		Notes:              "Maintien de contraction; utile pour contrôle.",
	},
	{
		ID:                 "paused_reps",
		Name:               "Paused reps",
		Category:           CategoryMixed,
		Repetitions:        "8–12 avec pause 1–3 s",
		Load:               "70–85%",
		Rest:               "Moyen",
		Goal:               "Tension mécanique maximale",
		LegacyDifficulty:   3,
		DifficultyLevel:    4,
		RecommendedProgram: "Myofi",
		Notes:              "Élimine l'élan; renforce la position.",
	},
	{
		ID:                 "lengthened_partials",
		Name:               "Lengthened partials",
		Category:           CategoryMixed,
		Repetitions:        "Partiels en position étirée",
		Load:               "Modérée–Lourde",
		Rest:               "Standard",
		Goal:               "Hypertrophie via stretch-mediated",
		LegacyDifficulty:   3,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Mixte; souvent utilisé pour stretch-mediated growth.",
	},
	{
		ID:                 "6_12_25",
		Name:               "6 / 12 / 25",
		Category:           CategoryMixed,
		Repetitions:        "6 / 12 / 25",
		Load:               "Variable",
		Rest:               "Variable",
		Goal:               "Stimule fibres lentes et rapides",
		LegacyDifficulty:   3,
		DifficultyLevel:    3,
		RecommendedProgram: "Mixte",
		Notes:              "Combinaison de zones de répétitions.",
	},
	{
		ID:                 "pyramidale",
		Name:               "Pyramidale (ascendante / inversée)",
		Category:           CategoryMixed,
		Repetitions:        "4–15 selon variante",
		Load:               "60–90% selon section",
		Rest:               "60–180 s",
		Goal:               "Force + volume combinés",
		LegacyDifficulty:   3,
		DifficultyLevel:    3,
		RecommendedProgram: "Myofi",
		Notes:              "Polyvalent; orientable selon charge.",
	},
	{
		ID:                 "repetitions_partielles_forces_negatives",
		Name:               "Répétitions partielles / forcées / négatives",
		Category:           CategoryMixed,
		Repetitions:        "1–6 + phase négative",
		Load:               "Lourde",
		Rest:               "Court",
		Goal:               "Hypertrophie + tension excentrique",
		LegacyDifficulty:   2,
		DifficultyLevel:    4,
		RecommendedProgram: "Myofi",
		Notes:              "Technique avancée; nécessite spotter.",
	},
	{
		ID:                 "accentuated_eccentric",
		Name:               "Accentuated eccentric loading (AEL)",
		Category:           CategoryMixed,
		Repetitions:        "Eccentrique 4–8 s ou +20–50% charge",
		Load:               "80–120% ecc",
		Rest:               "Moyen",
		Goal:               "Dommages + hypertrophie excentrique",
		LegacyDifficulty:   2,
		DifficultyLevel:    5,
		RecommendedProgram: "Myofi",
		Notes:              "Très exigeant; prudence sur récupération.",
	},
	{
		ID:                 "rest_pause_mixed",
		Name:               "Rest-pause (mixte)",
		Category:           CategoryMixed,
		Repetitions:        "8–12 + mini-pauses",
		Load:               "65–80%",
		Rest:               "Très court",
		Goal:               "Volume densifié",
		LegacyDifficulty:   2,
		DifficultyLevel:    3,
		RecommendedProgram: "Sarco",
		Notes:              "Peut être orienté volume ou tension.",
	},
	{
		ID:                 "low_rep_weighted",
		Name:               "Low-rep weighted sets",
		Category:           CategoryMyofibrillar,
		Repetitions:        "3–6",
		Load:               "80–90%",
		Rest:               "2–5 min",
		Goal:               "Force + fibres rapides",
		LegacyDifficulty:   2,
		DifficultyLevel:    5,
		RecommendedProgram: "Myofi",
		Notes:              "Séries courtes lourdes.",
	},
	{
		ID:                 "heavy_compounds",
		Name:               "Heavy compounds",
		Category:           CategoryMyofibrillar,
		Repetitions:        "3–6",
		Load:               "75–90%",
		Rest:               "2–5 min",
		Goal:               "Force + densité musculaire",
		LegacyDifficulty:   1,
		DifficultyLevel:    5,
		RecommendedProgram: "Myofi",
		Notes:              "Mouvements composés lourds.",
	},
	{
		ID:                 "wave_loading",
		Name:               "Wave loading",
		Category:           CategoryMyofibrillar,
		Repetitions:        "Alternance 7-5-3",
		Load:               "75–95%+",
		Rest:               "Long",
		Goal:               "Force progressive + adaptation nerveuse",
		LegacyDifficulty:   1,
		DifficultyLevel:    5,
		RecommendedProgram: "Myofi",
		Notes:              "Progression cyclique des charges.",
	},
	{
		ID:                 "cluster_sets",
		Name:               "Cluster sets",
		Category:           CategoryMyofibrillar,
		Repetitions:        "3–6 × mini-reps",
		Load:               "75–90%",
		Rest:               "Micro-pauses + long",
		Goal:               "Force + volume sous tension lourde",
		LegacyDifficulty:   1,
		DifficultyLevel:    5,
		RecommendedProgram: "Myofi",
		Notes:              "Très difficile; micro-pauses.",
	},
	{
		ID:                 "progressive_overload",
		Name:               "Progressive overload classique",
		Category:           CategoryMyofibrillar,
		Repetitions:        "Selon plan",
		Load:               "Progressif",
		Rest:               "Long",
		Goal:               "Force + hypertrophie durable",
		LegacyDifficulty:   1,
		DifficultyLevel:    4,
		RecommendedProgram: "Myofi",
		Notes:              "Principe fondamental de progression.",
	},
}
