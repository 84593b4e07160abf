package catalog

import "sjsm-storefront/internal/domain"

// seedProducts returns the full stationery catalog. IDs are stable across
// releases; gaps in the sequence belong to discontinued products.
func seedProducts() []domain.Product {
	return []domain.Product{
		// Pens
		{ID: 1, Name: "Premium Gel Pen Set", Description: "Set of 10 smooth-writing gel pens in assorted colors. Perfect for journaling and official use.", Price: 250, Category: "Pens", ImageURL: "https://images.unsplash.com/photo-1585336261022-680e295ce3fe?auto=format&fit=crop&q=80&w=800", Rating: 4.8, Reviews: 120},
		{ID: 6, Name: "Classic Fountain Pen", Description: "Elegant design with a fine nib. Includes 2 ink cartridges. A symbol of luxury.", Price: 850, Category: "Pens", ImageURL: "https://images.unsplash.com/photo-1583485088034-697b5bc54ccd?auto=format&fit=crop&q=80&w=800", Rating: 4.8, Reviews: 55},
		{ID: 13, Name: "Ballpoint Pen Box (50 pcs)", Description: "Bulk pack of reliable blue ballpoint pens. Ideal for office and school distribution.", Price: 400, Category: "Pens", ImageURL: "https://images.unsplash.com/photo-1585336261022-680e295ce3fe?auto=format&fit=crop&q=80&w=800", Rating: 4.5, Reviews: 200},
		{ID: 14, Name: "Fine Liner Set", Description: "0.4mm fine tip markers for precision drawing and writing. Set of 12.", Price: 350, Category: "Pens", ImageURL: "https://images.unsplash.com/photo-1513364776144-60967b0f800f?auto=format&fit=crop&q=80&w=800", Rating: 4.7, Reviews: 80},
		{ID: 15, Name: "Calligraphy Pen Set", Description: "Includes 3 nib sizes and black ink cartridges. Perfect for beginners.", Price: 650, Category: "Pens", ImageURL: "https://images.unsplash.com/photo-1583485088034-697b5bc54ccd?auto=format&fit=crop&q=80&w=800", Rating: 4.6, Reviews: 40},

		// Registers & notebooks
		{ID: 32, Name: "Classmate Long Register", Description: "300 Pages, Soft Cover, Single Ruled. Ideal for school and college notes.", Price: 140, Category: "Registers", ImageURL: "https://images.unsplash.com/photo-1531346878377-a5be20888e57?auto=format&fit=crop&q=80&w=800", Rating: 4.9, Reviews: 320},
		{ID: 33, Name: "Rough Register Pack (3 pcs)", Description: "Economy pack of rough registers for daily practice. 200 pages each.", Price: 180, Category: "Registers", ImageURL: "https://images.unsplash.com/photo-1544816155-12df9643f363?auto=format&fit=crop&q=80&w=800", Rating: 4.3, Reviews: 150},
		{ID: 2, Name: "A5 Hardcover Notebook", Description: "Eco-friendly paper, 200 pages, dotted grid. Durable and stylish.", Price: 350, Category: "Registers", ImageURL: "https://images.unsplash.com/photo-1544816155-12df9643f363?auto=format&fit=crop&q=80&w=800", Rating: 4.9, Reviews: 85},
		{ID: 16, Name: "Spiral Subject Register", Description: "300 pages, single ruled, high-quality white paper. Great for college notes.", Price: 180, Category: "Registers", ImageURL: "https://images.unsplash.com/photo-1531346878377-a5be20888e57?auto=format&fit=crop&q=80&w=800", Rating: 4.4, Reviews: 150},
		{ID: 17, Name: "Pocket Diary 2024", Description: "Leather-finish pocket diary with calendar and planner pages.", Price: 120, Category: "Registers", ImageURL: "https://images.unsplash.com/photo-1506784983877-45594efa4cbe?auto=format&fit=crop&q=80&w=800", Rating: 4.5, Reviews: 60},

		// Papers & files
		{ID: 34, Name: "A4 Copier Paper (500 Sheets)", Description: "75 GSM bright white multipurpose paper for printing and writing.", Price: 380, Category: "Files & Paper", ImageURL: "https://images.unsplash.com/photo-1586075010923-2dd4570fb338?auto=format&fit=crop&q=80&w=800", Rating: 4.8, Reviews: 500},
		{ID: 35, Name: "Practical File (Physics/Chem)", Description: "Hardbound practical notebook with interleaf pages for diagrams.", Price: 120, Category: "Files & Paper", ImageURL: "https://images.unsplash.com/photo-1544816155-12df9643f363?auto=format&fit=crop&q=80&w=800", Rating: 4.6, Reviews: 200},
		{ID: 8, Name: "Document File Folder", Description: "Expandable file folder with 12 pockets. Keep your documents organized.", Price: 299, Category: "Files & Paper", ImageURL: "https://images.unsplash.com/photo-1517842645767-c639042777db?auto=format&fit=crop&q=80&w=800", Rating: 4.4, Reviews: 89},
		{ID: 26, Name: "Ring Binder", Description: "A4 size 2-ring binder file. Durable PVC cover.", Price: 150, Category: "Files & Paper", ImageURL: "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?auto=format&fit=crop&q=80&w=800", Rating: 4.3, Reviews: 55},
		{ID: 27, Name: "Clear Bag Folder", Description: "L-shaped clear document folder, pack of 20.", Price: 200, Category: "Files & Paper", ImageURL: "https://images.unsplash.com/photo-1586075010923-2dd4570fb338?auto=format&fit=crop&q=80&w=800", Rating: 4.5, Reviews: 120},

		// Art supplies
		{ID: 3, Name: "Artist Sketchbook", Description: "Heavyweight paper suitable for ink, marker, and light watercolor.", Price: 450, Category: "Art Supplies", ImageURL: "https://images.unsplash.com/photo-1513364776144-60967b0f800f?auto=format&fit=crop&q=80&w=800", Rating: 4.7, Reviews: 45},
		{ID: 10, Name: "Acrylic Paint Set", Description: "12 vibrant colors, non-toxic, quick-drying paints for canvas and wood.", Price: 450, Category: "Art Supplies", ImageURL: "https://images.unsplash.com/photo-1513364776144-60967b0f800f?auto=format&fit=crop&q=80&w=800", Rating: 4.8, Reviews: 67},
		{ID: 19, Name: "Watercolor Palette", Description: "24 shades with mixing tray and brush. Professional grade.", Price: 550, Category: "Art Supplies", ImageURL: "https://images.unsplash.com/photo-1513364776144-60967b0f800f?auto=format&fit=crop&q=80&w=800", Rating: 4.6, Reviews: 35},
		{ID: 20, Name: "Canvas Board (10x12)", Description: "Pack of 3 primed canvas boards ready for oil or acrylic painting.", Price: 300, Category: "Art Supplies", ImageURL: "https://images.unsplash.com/photo-1513364776144-60967b0f800f?auto=format&fit=crop&q=80&w=800", Rating: 4.5, Reviews: 25},
		{ID: 21, Name: "Drawing Pencils Set", Description: "Graphite pencils ranging from 6H to 8B for shading and sketching.", Price: 250, Category: "Art Supplies", ImageURL: "https://images.unsplash.com/photo-1513364776144-60967b0f800f?auto=format&fit=crop&q=80&w=800", Rating: 4.9, Reviews: 110},

		// Desk accessories
		{ID: 4, Name: "Office Desk Organizer", Description: "Metal mesh organizer with multiple compartments for pens, clips, and notes.", Price: 599, Category: "Desk Accessories", ImageURL: "https://images.unsplash.com/photo-1497215728101-856f4ea42174?auto=format&fit=crop&q=80&w=800", Rating: 4.5, Reviews: 210},
		{ID: 11, Name: "Sticky Notes Pack", Description: "Neon colored sticky notes for reminders and bookmarks. Strong adhesive.", Price: 120, Category: "Desk Accessories", ImageURL: "https://images.unsplash.com/photo-1517842645767-c639042777db?auto=format&fit=crop&q=80&w=800", Rating: 4.3, Reviews: 150},
		{ID: 22, Name: "Paper Clips Dispenser", Description: "Magnetic paper clip holder with 100 colorful clips.", Price: 150, Category: "Desk Accessories", ImageURL: "https://images.unsplash.com/photo-1452860606245-08befc0ff44b?auto=format&fit=crop&q=80&w=800", Rating: 4.2, Reviews: 45},
		{ID: 23, Name: "Desktop Stapler", Description: "Heavy duty stapler. Includes 1000 staples.", Price: 220, Category: "Desk Accessories", ImageURL: "https://images.unsplash.com/photo-1497215728101-856f4ea42174?auto=format&fit=crop&q=80&w=800", Rating: 4.7, Reviews: 130},

		// Markers
		{ID: 5, Name: "Highlighter Pack (Pastel)", Description: "Set of 6 pastel highlighters. Mild colors that don't bleed through paper.", Price: 180, Category: "Markers", ImageURL: "https://images.unsplash.com/photo-1592595896551-12b371d546d5?auto=format&fit=crop&q=80&w=800", Rating: 4.6, Reviews: 300},
		{ID: 12, Name: "Whiteboard Marker Set", Description: "Pack of 4 (Red, Blue, Black, Green) erasable markers with low odor ink.", Price: 200, Category: "Markers", ImageURL: "https://images.unsplash.com/photo-1518623489648-a173ef7824f3?auto=format&fit=crop&q=80&w=800", Rating: 4.6, Reviews: 90},
		{ID: 24, Name: "Permanent Markers (Black)", Description: "Box of 10 bold black permanent markers. Waterproof and quick drying.", Price: 250, Category: "Markers", ImageURL: "https://images.unsplash.com/photo-1586075010923-2dd4570fb338?auto=format&fit=crop&q=80&w=800", Rating: 4.8, Reviews: 110},

		// School & exam essentials
		{ID: 9, Name: "Geometry Box Set", Description: "Complete mathematical drawing instruments box. Essential for school students.", Price: 150, Category: "Exam Essentials", ImageURL: "https://images.unsplash.com/photo-1595123550441-d377e017de6a?auto=format&fit=crop&q=80&w=800", Rating: 4.5, Reviews: 230},
		{ID: 36, Name: "Exam Clipboard", Description: "Transparent acrylic clipboard with strong grip. Allowed in exam halls.", Price: 100, Category: "Exam Essentials", ImageURL: "https://images.unsplash.com/photo-1531403009284-440f080d1e12?auto=format&fit=crop&q=80&w=800", Rating: 4.7, Reviews: 90},
		{ID: 7, Name: "Scientific Calculator", Description: "Essential for engineering and math students. 240 functions.", Price: 950, Category: "Exam Essentials", ImageURL: "https://images.unsplash.com/photo-1506784983877-45594efa4cbe?auto=format&fit=crop&q=80&w=800", Rating: 4.9, Reviews: 500},
		{ID: 25, Name: "Correction Tape", Description: "Instant correction tape, no drying time needed. 5mm x 12m.", Price: 80, Category: "Exam Essentials", ImageURL: "https://images.unsplash.com/photo-1452860606245-08befc0ff44b?auto=format&fit=crop&q=80&w=800", Rating: 4.4, Reviews: 70},
		{ID: 31, Name: "Pencil Sharpener (Electric)", Description: "Automatic pencil sharpener, battery operated.", Price: 450, Category: "Exam Essentials", ImageURL: "https://images.unsplash.com/photo-1618331835717-801e976710b2?auto=format&fit=crop&q=80&w=800", Rating: 4.5, Reviews: 30},
	}
}
