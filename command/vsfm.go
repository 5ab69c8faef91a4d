package command

// Default is the VisualSFM command table, keyed the way the commands
// appear in its GUI menus. Codes come from the tool's published socket
// interface.
var Default = &Registry{root: map[string]node{
	"file": menu(map[string]node{
		"open_multi_images":   leaf(33166),
		"open_image_and_sift": leaf(33028),
		"open_current_path":   leaf(33186),
		"detect_features":     leaf(32928),
		"load_feature_file":   leaf(33167),
		"new_window":          leaf(32841),
		"close_window":        leaf(105),
		"exit_program":        leaf(32842),
	}),
	"sfm": menu(map[string]node{
		"reconstruct_sparse":     leaf(33041),
		"reconstruct_resume":     leaf(33065),
		"reconstruct_dense":      leaf(33471),
		"load_nview_match":       leaf(33045),
		"add_nview_match":        leaf(33202),
		"save_nview_match":       leaf(33044),
		"clear_workspace":        leaf(33047),
		"delete_selected_camera": leaf(33074),
		"delete_selected_model":  leaf(33216),
		"delete_all_models":      leaf(33237),
		"twoview": menu(map[string]node{
			"two_view_match":       leaf(33046),
			"feature_match":        leaf(33018),
			"f_matrix_match":       leaf(33023),
			"guided_match":         leaf(33277),
			"h_matrix_match":       leaf(33059),
			"save_inlier_match":    leaf(33057),
			"load_inlier_match":    leaf(33021),
			"discard_inlier_match": leaf(33239),
			"save_as_nv_match":     leaf(33282),
			"mutual_best_match":    leaf(33296),
			"use_small_features":   leaf(33298),
			"no_stationary_points": leaf(33499),
		}),
		"pairwise": menu(map[string]node{
			"compute_missing_match":       leaf(33033),
			"compute_specified_match":     leaf(33487),
			"compute_sequence_match":      leaf(33498),
			"compute_missing_f_matrix":    leaf(33043),
			"update_pairwise_f_matrix":    leaf(33220),
			"use_preemptive_matching":     leaf(33507),
			"multi_threaded_match":        leaf(33191),
			"asynchronous_match":          leaf(33477),
			"use_filetitle_as_identifier": leaf(33228),
			"import_feature_matches":      leaf(33486),
			"export_feature_matches":      leaf(33473),
			"export_f_matrix_matches":     leaf(33503),
			"show_spanning_forest":        leaf(34000),
			"show_match_matrix":           leaf(33268),
		}),
		"more": menu(map[string]node{
			"reload_all_settings":     leaf(33152),
			"start_new_model":         leaf(33212),
			"set_initialization_pair": leaf(33184),
			"set_fixed_calibration":   leaf(33299),
			"bundle_adjustment":       leaf(33061),
			"reconstruct_mesh":        leaf(33523),
			"gcp_based_transform":     leaf(33489),
			"gps_based_transform":     leaf(33500),
			"find_more_points":        leaf(33066),
			"run_constrained_ba":      leaf(33531),
			"update_point_color":      leaf(33367),
			"update_thumbnails":       leaf(33405),
			"use_shared_calibration":  leaf(33508),
			"search_multiple_models":  leaf(33210),
			"use_radial_distortion":   leaf(33185),
			"filter_unstable_points":  leaf(33201),
			"less_visualization_data": leaf(33229),
			"use_level_0_for_pmvs":    leaf(33519),
		}),
		"extra": menu(map[string]node{
			"model_information":    leaf(33225),
			"save_compact_nvm":     leaf(33200),
			"save_selected_model":  leaf(33223),
			"save_separate_models": leaf(33226),
			"delete_current_photo": leaf(33048),
			"delete_reconstructed": leaf(33198),
			"delete_not_in_nvm":    leaf(33355),
		}),
	}),
	"view": menu(map[string]node{
		"single_image":      leaf(32777),
		"feature_matches":   leaf(33019),
		"inlier_matches":    leaf(33007),
		"2_view_3d_points":  leaf(33005),
		"n_view_3d_points":  leaf(33037),
		"dense_3d_points":   leaf(33467),
		"image_thumbnails":  leaf(33190),
		"perspective_view":  leaf(33530),
		"dark_background":   leaf(33451),
		"show_single_model": leaf(33218),
		"show_2view_tracks": leaf(33034),
		"hilight_image":     leaf(33078),
		"hilight_matcher":   leaf(33038),
		"next_photo_pair":   leaf(33032),
		"prev_photo_pair":   leaf(33049),
		"options": menu(map[string]node{
			"switch_2d_3d":       leaf(33077),
			"show_3+_points":     leaf(33070),
			"textured_camera":    leaf(33042),
			"show_bounding_box":  leaf(33012),
			"downward_3d_y_axis": leaf(33505),
			"show_features":      leaf(32922),
			"tight_thumbnails":   leaf(33234),
			"show_rand_match":    leaf(33025),
			"horizontal_layout":  leaf(33344),
			"align_two_images":   leaf(33246),
		}),
	}),
}}
