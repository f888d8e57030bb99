package icons

// iconOrder is the canonical listing order for the fixed icon set.
var iconOrder = []string{
	"tablets",
	"capsules",
	"sachets",
	"gum",
	"inserts",
	"ointment",
	"lotion",
	"patches",
	"syrup",
	"mouthwash",
	"sprays",
	"drops",
	"injections",
	"inhalers",
}

// iconSVGs holds the raw SVG markup for every icon, exactly as drawn in
// the source sheet. Geometry, strokes, and opacity are never edited here;
// recoloring happens downstream against the color manifest.
var iconSVGs = map[string]string{
	"tablets": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-2.4 -2.4 28.8 28.8">
      <defs>
        <clipPath id="clip-top-left">
          <polygon points="0,0 0,24 24,24" />
        </clipPath>
        <clipPath id="clip-bottom-right">
          <polygon points="0,0 24,0 24,24" />
        </clipPath>
      </defs>
      <rect x="-2.4" y="-2.4" width="28.8" height="28.8" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g clip-path="url(#clip-top-left)">
        <circle cx="12" cy="12" r="9" fill="#d6d6d6" fill-opacity="0.95" />
      </g>
      <g clip-path="url(#clip-bottom-right)">
        <circle cx="12" cy="12" r="9" fill="#ffffff" fill-opacity="0.95" />
      </g>
      <circle cx="12" cy="12" r="9" fill="none" stroke="#111827" stroke-width="0.5" stroke-linecap="round" stroke-linejoin="round" />
      <line x1="5.64" y1="5.64" x2="18.36" y2="18.36" stroke="#111827" stroke-width="0.5" stroke-linecap="round" />
    </svg>`,
	"capsules": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <defs>
        <clipPath id="cap-clip-top-left">
          <polygon points="0,0 0,24 24,24" />
        </clipPath>
        <clipPath id="cap-clip-bottom-right">
          <polygon points="0,0 24,0 24,24" />
        </clipPath>
      </defs>
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g clip-path="url(#cap-clip-top-left)">
        <path d="m10.5 20.5 10 -10a4.95 4.95 0 1 0 -7 -7l-10 10a4.95 4.95 0 1 0 7 7Z" fill="#d6d6d6" fill-opacity="0.95" />
      </g>
      <g clip-path="url(#cap-clip-bottom-right)">
        <path d="m10.5 20.5 10 -10a4.95 4.95 0 1 0 -7 -7l-10 10a4.95 4.95 0 1 0 7 7Z" fill="#ffffff" fill-opacity="0.95" />
      </g>
      <path d="m10.5 20.5 10 -10a4.95 4.95 0 1 0 -7 -7l-10 10a4.95 4.95 0 1 0 7 7Z" fill="none" stroke="#000000" stroke-linecap="round" stroke-linejoin="round" stroke-width="0.5" />
      <path d="m8.5 8.5 7 7" fill="none" stroke="#000000" stroke-linecap="round" stroke-linejoin="round" stroke-width="0.5" />
    </svg>`,
	"sachets": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <rect x="1.6" y="2.9" width="20.8" height="18.2" rx="2" ry="2" fill="#c9c9c9" stroke="#000000" stroke-width="0.5" />
      <rect x="3.68" y="4.72" width="16.64" height="14.56" rx="2" ry="2" fill="#ffffff" stroke="#000000" stroke-width="0.5" />
    </svg>`,
	"gum": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <!-- Filled compartments -->
      <rect x="1" y="4" width="4.4" height="16" fill="#d6d6d6" fill-opacity="0.95" />
      <rect x="5.4" y="4" width="13.2" height="16" fill="#ffffff" fill-opacity="0.95" />
      <rect x="18.6" y="4" width="4.4" height="16" fill="#d6d6d6" fill-opacity="0.95" />
      <!-- Outlines -->
      <rect x="1" y="4" width="22" height="16" fill="none" stroke="#000000" stroke-width="0.5" />
      <line x1="3.2" y1="4" x2="3.2" y2="20" stroke="#000000" stroke-width="0.5" />
      <line x1="5.4" y1="4" x2="5.4" y2="20" stroke="#000000" stroke-width="0.5" />
      <line x1="18.6" y1="4" x2="18.6" y2="20" stroke="#000000" stroke-width="0.5" />
      <line x1="20.8" y1="4" x2="20.8" y2="20" stroke="#000000" stroke-width="0.5" />
    </svg>`,
	"inserts": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-4.2 -4.2 22.4 22.4"> 
      <rect x="-4.2" y="-4.2" width="22.4" height="22.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(-0.27 0.84)">
        <path d="M7.27399 0.843018C2.66875 2.61426 4.46952 8.96124 5.50274 11.4705h3.5425C10.0785 8.96124 11.8792 2.61426 7.27399 0.843018Z" fill="#ffffff" stroke="#000000" stroke-miterlimit="1" vector-effect="non-scaling-stroke" stroke-width="2" />
        <path d="M10.1429 4.38551H4.40479C4.69789 2.85148 5.5228 1.51649 7.27383 0.843018 9.02486 1.51649 9.84976 2.85148 10.1429 4.38551Z" fill="#ffffff" stroke="#000000" stroke-miterlimit="1" vector-effect="non-scaling-stroke" stroke-width="2" />
      </g>
    </svg>`,
	"ointment": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(-1.2,0.96) translate(12,12) rotate(90)">
        <g transform="scale(1.4,1.68) translate(-8,-8)" fill="none" stroke="#000000" stroke-miterlimit="10" stroke-width="0.5">
          <path d="M8.531 12.064h-1.562A3.080 3.080 0 0 1 3.874 9.151L3.435 0.968h8.628L11.624 9.151a3.080 3.080 0 0 1 -3.093 2.912Z" fill="#ffffff" fill-opacity="0.95" />
          <path d="M5.902 12.064h3.700625v2.467H5.902Z" fill="#7dd3fc" fill-opacity="0.95" />
          <path d="m5.282 3.435 6.781 0" />
        </g>
        <g transform="translate(0.24,-0.48) scale(1.4) translate(-8,-8)" fill="none" stroke="#000000" stroke-miterlimit="10" stroke-width="0.5">
          <path d="m5.902 7.749 3.694 0" />
          <path d="m7.749 5.902 0 3.694" />
        </g>
      </g>
    </svg>`,
	"lotion": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <defs>
        <clipPath id="lotion-clip">
          <path d="m6.516 12.064 -4.314 0L0.968 0.968l6.781 0 -1.233 11.095z" />
        </clipPath>
      </defs>
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(5.04,0.48) translate(12,12) scale(1.54) translate(-7.75,-8)">
        <g clip-path="url(#lotion-clip)">
          <rect x="0.96875" y="0.96875" width="6.78125" height="3.700" fill="#ffffff" fill-opacity="0.95" />
          <rect x="0.96875" y="4.669375" width="6.78125" height="4.927" fill="#d6d6d6" fill-opacity="0.95" />
          <rect x="0.96875" y="9.597" width="6.78125" height="2.467" fill="#ffffff" fill-opacity="0.95" />
        </g>
        <g fill="none" stroke="#000000" stroke-miterlimit="10" stroke-width="0.3">
          <path d="m6.516 12.064 -4.314 0L0.96875 0.9689l6.781 0 -1.233 11.095z" />
          <path d="m6.787 9.597 -4.856 0" />
          <path d="m7.336 4.669 -5.954 0" />
        </g>
        <path d="M2.202 12.064h4.314v2.467H2.202Z" fill="#7dd3fc" fill-opacity="0.95" stroke="#000000" stroke-miterlimit="10" stroke-width="0.3" />
      </g>
    </svg>`,
	"patches": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <defs>
        <clipPath id="patches-clip">
          <path d="M21.088 33.893c1.698 1.697 4.00 2.651 6.402 2.651 2.401 0 4.704 -0.953 6.402 -2.651 1.697 -1.697 2.651 -4.00 2.651 -6.402 0 -2.401 -0.953 -4.704 -2.651 -6.402l-17.082 -17.082C15.113 2.308 12.810 1.354 10.408 1.354c-2.401 0 -4.704 0.953 -6.402 2.651 -1.698 1.698 -2.651 4.00 -2.651 6.402 0 2.401 0.953 4.702 2.651 6.402.082 17.082Z" />
        </clipPath>
      </defs>
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(12,12) scale(0.625) translate(-18.95,-18.95)">
        <g clip-path="url(#patches-clip)">
          <rect x="-0.25" y="-0.25" width="38.4" height="38.4" fill="#ffffff" fill-opacity="0.95" />
          <polygon points="8.47 21.3 21.31 8.47 29.43 16.59 16.59 29.43" fill="#d6d6d6" fill-opacity="0.95" />
          <g transform="translate(19.33,19.33) rotate(-45) scale(0.55) translate(-24,-25.5)" fill="#000000" stroke="none">
            <path d="M24.0005 21.0012c0.8287 0 1.5004 -0.6718 1.5004 -1.5005s-0.6717 -1.5005 -1.5004 -1.5005c-0.8288 0 -1.5005 0.6718 -1.5005 1.5005s0.6717 1.5005 1.5005 1.5005Z" />
            <path d="M28.5007 25.5011c0.8287 0 1.5005 -0.6718 1.5005 -1.5005s-0.6718 -1.5005 -1.5005 -1.5005 -1.5005 0.6718 -1.5005 1.5005 0.6718 1.5005 1.5005 1.5005Z" />
            <path d="M19.5005 25.5011c0.8287 0 1.5004 -0.6718 1.5004 -1.5005s-0.6717 -1.5005 -1.5004 -1.5005c-0.8288 0 -1.5005 0.6718 -1.5005 1.5005s0.6717 1.5005 1.5005 1.5005Z" />
            <path d="M24.0005 30.0011c0.8287 0 1.5004 -0.6718 1.5004 -1.5005s-0.6717 -1.5005 -1.5004 -1.5005c-0.8288 0 -1.5005 0.6718 -1.5005 1.5005s0.6717 1.5005 1.5005 1.5005Z" />
          </g>
        </g>
        <g fill="none" stroke="#000000" stroke-linecap="round" stroke-linejoin="round" stroke-width="0.5">
          <path d="m8.473 21.304 12.831 -12.831" />
          <path d="m16.594 29.426 12.831 -12.831" />
          <path d="M21.088 33.893c1.698 1.69792 4.00 2.651 6.402 2.651 2.401 0 4.704 -0.953 6.402 -2.651 1.697 -1.697 2.651 -4.001 2.651 -6.402 0 -2.401 -0.953 -4.704 -2.651 -6.402l-17.082 -17.082C15.113 2.308 12.810 1.354 10.408 1.354c-2.401 0 -4.704 0.953 -6.402 2.651 -1.698 1.698 -2.651 4.001 -2.651 6.402 0 2.401 0.953 4.704 2.651 6.402l17.082 17.082Z" />
        </g>
      </g>
    </svg>`,
	"syrup": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <defs>
        <clipPath id="syrup-body-clip">
          <path d="M12.466 32.724h12.466a1.5581 1.558 0 0 0 1.558 -1.558V15.583a4.674 4.674 0 0 0 -4.674 -4.674h -6.233a4.674 4.674 0 0 0 -4.674 4.674v15.583a1.558 1.558 0 0 0 1.558 1.558z" />
        </clipPath>
        <clipPath id="syrup-cap-clip">
          <path d="M15.58 6.48 a 1.56 1.56 0 0 1 1.56 -1.56 H 20.250 a 1.56 1.56 0 0 1 1.56 1.56 V 10.91 H 15.58 Z" />
        </clipPath>
      </defs>
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(12,12) scale(0.83125) translate(-18.7,-18.7)">
        <g clip-path="url(#syrup-body-clip)">
          <rect x="-0.5" y="-6.26" width="76.8" height="44.16" fill="#ffffff" fill-opacity="0.95" />
        </g>
        <g clip-path="url(#syrup-cap-clip)">
          <rect x="-0.5" y="-6.26" width="76.8" height="44.16" fill="#e37b35" fill-opacity="0.95" />
        </g>
        <g fill="none" stroke="#000000" stroke-linecap="round" stroke-linejoin="round" stroke-width="0.5">
          <path d="M12.466 32.724h12.466a1.558 1.558 0 0 0 1.558 -1.558V15.583a4.674 4.674 0 0 0 -4.674 -4.674h-6.233a4.674 4.674 0 0 0 -4.674 4.674v15.583a1.558 1.558 0 0 0 1.558 1.558z" />
          <path d="M15.583 21.816h6.233" />
          <path d="M18.699 18.699v6.233" />
          <path d="M15.583 10.908V6.233a1.558 1.558 0 0 1 1.558 -1.558h3.116a1.558 1.558 0 0 1 1.558 1.558v4.674" />
        </g>
      </g>
    </svg>`,
	"mouthwash": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <defs>
        <clipPath id="mw-cap-clip">
          <path d="M9 4a1 1 0 0 1 1 -1h4a1 1 0 0 1 1 1v1a1 1 0 0 1 -1 1h-4a1 1 0 0 1 -1 -1z" />
        </clipPath>
        <clipPath id="mw-body-clip">
        <path d="M10 6v0.98c0 0.877 -0.634 1.626 -1.5 1.77 -0.866 0.144 -1.5 0.893 -1.5 1.77V19a2 2 0 0 0 2 2h6a2 2 0 0 0 2 -2v-8.48c0 -0.877 -0.634 -1.626 -1.5 -1.77A1.795 1.795 0 0 1 14 6.98V6" />
      </clipPath>
      </defs>
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(12,12) scale(1.330) translate(-12,-12)" fill="none" stroke="#000000" stroke-linecap="round" stroke-linejoin="round" stroke-width="0.5">
        <g clip-path="url(#mw-cap-clip)"><rect x="0" y="0" width="24" height="8" fill="#7dd3fc" fill-opacity="0.95" /></g>
        <g clip-path="url(#mw-body-clip)">
        <rect x="0" y="6" width="24" height="6" fill="#ffffff" fill-opacity="0.95" />
          <rect x="0" y="12" width="24" height="6" fill="#e2e8f0" fill-opacity="0.95" />
          <rect x="0" y="18" width="24" height="6" fill="#ffffff" fill-opacity="0.95" />
        </g>
        <path d="M9 4a1 1 0 0 1 1 -1h4a1 1 0 0 1 1 1v1a1 1 0 0 1 -1 1h-4a1 1 0 0 1 -1 -1z" />
        <path d="M10 6v0.98c0 0.877 -0.634 1.626 -1.5 1.77 -0.866 0.144 -1.5 0.893 -1.5 1.77V19a2 2 0 0 0 2 2h6a2 2 0 0 0 2 -2v-8.48c0 -0.877 -0.634 -1.626 -1.5 -1.77A1.795 1.795 0 0 1 14 6.98V6" />
        <path d="M7 12h10" />
        <path d="M7 18h10" />
      </g>
    </svg>`,
	"sprays": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <defs>
        <clipPath id="spray-body-clip"><path d="M10.456 8.843H4.281a2.058 2.058 0 0 0 -2.058 2.058v10.291c0 1.137 0.921 2.058 2.058 2.058h6.175a2.058 2.058 0 0 0 2.058 -2.058V10.901a2.058 2.058 0 0 0 -2.058 -2.058Z" /></clipPath>
        <clipPath id="spray-cap-clip"><path d="M5.079 1.871h4.58a0.8 0.8 0 0 1 0.8 0.8v6.172H4.282V2.668a0.8 0.8 0 0 1 0.8 -0.8l-0.003 0.003Z" /></clipPath>
      </defs>
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(1.2,0) translate(12,12) scale(0.922) translate(-12,-12)" fill="none" stroke="#000000" stroke-linecap="round" stroke-linejoin="round" stroke-width="0.5">
        <g clip-path="url(#spray-cap-clip)"><rect x="0" y="0" width="24" height="8.64" fill="#7dd3fc" fill-opacity="0.95" /></g>
        <g clip-path="url(#spray-body-clip)"><rect x="0" y="0" width="24" height="24" fill="#ffffff" fill-opacity="0.95" /></g>
        <path d="M10.456 8.843H4.281a2.058 2.058 0 0 0 -2.058 2.058v10.291c0 1.137 0.921 2.058 2.058 2.058h6.175a2.058 2.058 0 0 0 2.058 -2.058V10.901a2.058 2.058 0 0 0 -2.058 -2.058Z" />
        <path d="M5.079 1.871h4.58a0.8 0.8 0 0 1 0.8 0.8v6.172H4.282V2.668a0.8 0.8 0 0 1 0.8 -0.8l-0.003 0.003Z" />
        <path d="M7.369 13.988v4.116" />
        <path d="M5.311 16.046h4.116" />
        <path d="M21.356 5.71a0.375 0.375 0 0 1 0 -0.75" />
        <path d="M21.356 5.71a0.375 0.375 0 0 0 0 -0.75" />
        <path d="M20.139 10.012a0.375 0.375 0 1 1 0 -0.75" />
        <path d="M20.139 10.012a0.375 0.375 0 1 0 0 -0.75" />
        <path d="M20.139 1.592a0.375 0.375 0 0 1 0 -0.75" />
        <path d="M20.139 1.592a0.375 0.375 0 0 0 0 -0.75" />
        <path d="M16.21 4.118a0.375 0.375 0 0 1 0 -0.75" />
        <path d="M16.21 4.118a0.375 0.375 0 0 0 0 -0.75" />
        <path d="M16.21 7.486a0.375 0.375 0 0 1 0 -0.75" />
        <path d="M16.21 7.486a0.375 0.375 0 0 0 0 -0.75" />
      </g>
    </svg>`,
	"drops": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <defs>
        <clipPath id="drops-bottle-clip"><path d="m8.009 9.879 -1.870 4.670v5.610a1.870 1.870 0 0 0 1.870 1.8703h7.480a1.870 1.870 0 0 0 1.870 -1.870v-5.610l-1.870 -4.670" /></clipPath>
        <clipPath id="drops-cap-clip"><path d="M13.620 3.828v-0.489A1.870 1.870 0 0 0 11.75 1.468a1.870 1.870 0 0 0 -1.870 1.870v0.489a1.958 1.958 0 0 1 -0.195 0.842l-0.734 1.468h5.600l-0.734 -1.468a1.958 1.958 0 0 1 -0.195 -0.842Z" /></clipPath>
        <clipPath id="drops-label-clip"><path d="M7.079375 6.139h9.351v3.74H7.079Z" /></clipPath>
        <clipPath id="drops-drop-clip"><path d="M13.620 16.538a1.870 1.870 0 0 1 -3.740 0c0 -1.635 1.870 -3.035 1.870 -3.035s1.870 1.400 1.870 3.035Z" /></clipPath>
      </defs>
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(12,12) scale(1.119) translate(-12,-12)" fill="none" stroke="#000000" stroke-linecap="round" stroke-linejoin="round" stroke-width="0.5">
        <g clip-path="url(#drops-cap-clip)"><rect x="0" y="0" width="24" height="8" fill="#fafbfc" fill-opacity="0.95" /></g>
        <g clip-path="url(#drops-bottle-clip)"><rect x="0" y="0" width="24" height="24" fill="#fafbfc" fill-opacity="0.95" /></g>
        <g clip-path="url(#drops-label-clip)"><rect x="0" y="0" width="24" height="24" fill="#fafbfc" fill-opacity="0.95" /></g>
        <g clip-path="url(#drops-drop-clip)"><rect x="0" y="0" width="24" height="24" fill="#009dff" fill-opacity="0.95" /></g>
        <path d="m8.009 9.879 -1.870 4.670v5.610a1.870 1.870 0 0 0 1.870 1.870h7.480a1.870 1.870 0 0 0 1.870 -1.870v-5.610l-1.870 -4.670" />
        <path d="M13.620 16.538a1.870 1.870 0 0 1 -3.740 0c0 -1.635 1.870 -3.035 1.870 -3.035s1.870 1.400 1.870 3.035Z" />
        <path d="M7.079 6.139h9.351v3.740H7.079Z" />
        <path d="M13.620 3.828v-0.489A1.870 1.870 0 0 0 11.75 1.468a1.870 1.870 0 0 0 -1.870 1.870v0.489a1.958 1.958 0 0 1 -0.195 0.842l-0.734375 1.468h5.600l-0.734 -1.468a1.958 1.958 0 0 1 -0.195 -0.842Z" />
      </g>
    </svg>`,
	"injections": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(12,12) scale(1.330) translate(-11.28,-12)" fill="none" stroke="#000000" stroke-linecap="round" stroke-linejoin="round" stroke-width="0.5">
        <path d="m17.25 1.91 3.83 3.83" />
        <path d="m10.58 12.3 8.4 -8.4" />
        <path d="M18.20 8.625 8.337 18.495c-0.958 0.958 -2.395 0.958 -3.258 0l-0.575 -0.575c-0.958 -0.958 -0.95 -2.395 0 -3.258L14.375 4.791" />
        <path d="m8.625 10.54 3.833 3.833" />
        <path d="m4.791 18.208 -2.875 2.875" />
        <path d="m13.416 3.833 5.75 5.75" />
      </g>
    </svg>`,
	"inhalers": `<?xml version="1.0" encoding="UTF-8"?>
    <svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-7.2 -7.2 38.4 38.4">
      <rect x="-7.2" y="-7.2" width="38.4" height="38.4" rx="2" ry="2" fill="#009dff" fill-opacity="1" stroke="#000000" stroke-width="0" />
      <g transform="translate(13.2,12) scale(0.40802448146888814) translate(-29.41,-29.41)">
        <path d="M52.575,44.293h-6.483v-0.528c0-1.598-1.276-3-2.73-3H28.856l-1.217-13.407 c-0.103-1.267-0.899-2.723-1.913-3.577l-1.79-21.035c-0.067-0.796-0.442-1.52-1.057-2.038c-0.613-0.518-1.394-0.766-2.187-0.698 L8.164,1.077C6.516,1.218,5.29,2.673,5.429,4.323l0.555,6.342c-0.847-0.422-1.707-0.32-2.237,0.258 c-0.266,0.289-0.566,0.823-0.489,1.729L6.94,55.91c0.136,1.604,1.556,2.909,3.165,2.909h13.92H29.4c0.007,0.001,0.015,0,0.02,0 h13.672c1.654,0,3-1.346,3-3v-0.528h6.483c1.654,0,3-1.346,3-3v-4.998C55.575,45.638,54.229,44.293,52.575,44.293z M8.112,12.048 L7.749,7.896l14.514-1.235l1.334,15.668L8.112,12.048z M8.333,3.071l12.529-1.066c0.259-0.022,0.521,0.06,0.728,0.233 c0.205,0.173,0.331,0.414,0.354,0.678l0.149,1.752L7.575,5.903L7.421,4.152C7.375,3.602,7.784,3.117,8.333,3.071z M24.025,56.819 h-13.92c-0.576,0-1.124-0.503-1.173-1.078L5.255,12.553l19.007,12.619c0.66,0.438,1.319,1.557,1.384,2.357l2.659,29.291H24.025z M44.091,55.819c0,0.551-0.448,1-1,1H30.313l-1.275-14.054h14.323c0.25,0,0.73,0.422,0.73,1V55.819z M53.575,52.291 c0,0.551-0.448,1-1,1h-6.483v-6.998h6.483c0.552,0,1,0.449,1,1V52.291z M23.143,51.99c0,0.276-0.224,0.5-0.5,0.5h-9.001 c-0.276,0-0.5-0.224-0.5-0.5s0.224-0.5,0.5-0.5h9.001C22.919,51.49,23.143,51.714,23.143,51.99z M23.143,49.792 c0,0.276-0.224,0.5-0.5,0.5h-9.001c-0.276,0-0.5-0.224-0.5-0.5s0.224-0.5,0.5-0.5h9.001C22.919,49.292,23.143,49.515,23.143,49.792z M23.143,47.594c0,0.276-0.224,0.5-0.5,0.5h-9.001c-0.276,0-0.5-0.224-0.5-0.5s0.224-0.5,0.5-0.5h9.001 C22.919,47.094,23.143,47.318,23.143,47.594z" fill="#231F20" />
      </g>
    </svg>`,
}
